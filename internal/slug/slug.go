// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"strconv"
	"strings"
	"time"
)

func keep(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 0x4e00 && r <= 0x9fa5: // CJK unified ideographs
		return true
	}
	return false
}

// Generate lower-cases name and collapses every run of characters outside
// [a-z0-9] and the CJK block into a single hyphen, trimming hyphens at both
// ends. Blank input yields "".
func Generate(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range name {
		if keep(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// MakeUnique resolves a slug collision by appending the current epoch
// milliseconds once. Best effort only: two precisely coincident requests in
// the same millisecond can still collide, there is no recheck loop.
func MakeUnique(candidate string, exists func(string) bool) string {
	if !exists(candidate) {
		return candidate
	}
	return candidate + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

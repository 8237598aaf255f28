package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var slugRe = regexp.MustCompile(`^[a-z0-9\x{4e00}-\x{9fa5}]+(?:-[a-z0-9\x{4e00}-\x{9fa5}]+)*$`)

// IsSlug reports whether the field is a well formed URL slug: lowercase
// alphanumerics or CJK characters separated by single hyphens, no
// leading or trailing hyphen. Matches what the slug generator emits.
func IsSlug(fl validator.FieldLevel) bool {
	return slugRe.MatchString(fl.Field().String())
}

package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "hello", "hello"},
		{"uppercase folded", "Hello World", "hello-world"},
		{"punctuation collapsed", "Hello,   World!!", "hello-world"},
		{"leading and trailing junk trimmed", "  --Hello--  ", "hello"},
		{"digits kept", "Top 10 Posts of 2024", "top-10-posts-of-2024"},
		{"cjk kept", "你好世界", "你好世界"},
		{"mixed cjk and ascii", "Go 语言 Tips", "go-语言-tips"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Generate(tc.in))
		})
	}
}

func TestGenerateIdempotent(t *testing.T) {
	for _, in := range []string{"Hello World", "Go 语言 Tips", "a--b--c"} {
		once := Generate(in)
		assert.Equal(t, once, Generate(once))
	}
}

func TestGenerateNeverEdgeHyphen(t *testing.T) {
	for _, in := range []string{"-x-", "...a...", " a b ", "--"} {
		got := Generate(in)
		assert.False(t, strings.HasPrefix(got, "-"), "leading hyphen in %q", got)
		assert.False(t, strings.HasSuffix(got, "-"), "trailing hyphen in %q", got)
		assert.NotContains(t, got, "--")
	}
}

func TestMakeUnique(t *testing.T) {
	exists := func(s string) bool { return s == "taken" }

	assert.Equal(t, "free", MakeUnique("free", exists))

	got := MakeUnique("taken", exists)
	assert.True(t, strings.HasPrefix(got, "taken-"), "got %q", got)
	suffix := strings.TrimPrefix(got, "taken-")
	assert.Greater(t, len(suffix), 10, "expected millisecond suffix, got %q", suffix)
}

package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSlug(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("slug", IsSlug))

	type form struct {
		Slug string `validate:"slug"`
	}

	valid := []string{"hello", "hello-world", "top-10", "你好", "go-语言-tips"}
	for _, s := range valid {
		assert.NoError(t, v.Struct(form{Slug: s}), "expected %q to pass", s)
	}

	invalid := []string{"", "Hello", "-leading", "trailing-", "double--hyphen", "with space", "under_score"}
	for _, s := range invalid {
		assert.Error(t, v.Struct(form{Slug: s}), "expected %q to fail", s)
	}
}

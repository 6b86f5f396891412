package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Webbist-dev/strapi/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("title", "hello")
		assert.True(t, rule.Check())
	})

	t.Run("fails for empty string", func(t *testing.T) {
		rule := validator.RequiredString("title", "")
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		rule := validator.RequiredString("title", "   \t")
		assert.False(t, rule.Check())
	})
}

func TestMinLenString(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		rule := validator.MinLenString("title", "abc", 3)
		assert.True(t, rule.Check())
	})

	t.Run("fails below the minimum", func(t *testing.T) {
		rule := validator.MinLenString("title", "ab", 3)
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.min_length", rule.Error.TranslationKey)
		assert.Equal(t, 3, rule.Error.TranslationValues["min"])
	})
}

func TestMaxLenString(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		rule := validator.MaxLenString("title", "abc", 3)
		assert.True(t, rule.Check())
	})

	t.Run("fails above the maximum", func(t *testing.T) {
		rule := validator.MaxLenString("title", "abcd", 3)
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.max_length", rule.Error.TranslationKey)
	})
}

func TestInListString(t *testing.T) {
	allowed := []string{"draft", "published"}

	t.Run("passes for a listed value", func(t *testing.T) {
		rule := validator.InListString("status", "draft", allowed)
		assert.True(t, rule.Check())
	})

	t.Run("fails for an unlisted value", func(t *testing.T) {
		rule := validator.InListString("status", "archived", allowed)
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.in_list", rule.Error.TranslationKey)
		assert.Contains(t, rule.Error.Message, "draft, published")
	})

	t.Run("fails for empty allowed list", func(t *testing.T) {
		rule := validator.InListString("status", "draft", nil)
		assert.False(t, rule.Check())
	})
}

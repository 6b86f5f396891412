package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Webbist-dev/strapi/pkg/validator"
)

func TestRequiredNum(t *testing.T) {
	t.Run("passes for non-zero int", func(t *testing.T) {
		rule := validator.RequiredNum("views", 42)
		assert.True(t, rule.Check())
	})

	t.Run("fails for zero int", func(t *testing.T) {
		rule := validator.RequiredNum("views", 0)
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
	})

	t.Run("fails for zero float", func(t *testing.T) {
		rule := validator.RequiredNum("rating", 0.0)
		assert.False(t, rule.Check())
	})
}

func TestMinNum(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		rule := validator.MinNum("views", int64(0), int64(0))
		assert.True(t, rule.Check())
	})

	t.Run("fails below the minimum", func(t *testing.T) {
		rule := validator.MinNum("views", int64(-1), int64(0))
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.min", rule.Error.TranslationKey)
	})

	t.Run("works with floats", func(t *testing.T) {
		rule := validator.MinNum("rating", 2.5, 3.0)
		assert.False(t, rule.Check())
	})
}

func TestMaxNum(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		rule := validator.MaxNum("rating", 5.0, 5.0)
		assert.True(t, rule.Check())
	})

	t.Run("fails above the maximum", func(t *testing.T) {
		rule := validator.MaxNum("rating", 5.1, 5.0)
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.max", rule.Error.TranslationKey)
	})
}

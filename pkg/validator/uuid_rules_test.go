package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Webbist-dev/strapi/pkg/validator"
)

func TestValidUUID(t *testing.T) {
	t.Run("passes for valid UUID", func(t *testing.T) {
		rule := validator.ValidUUID("document_id", uuid.NewString())
		assert.True(t, rule.Check())
	})

	t.Run("fails for empty string", func(t *testing.T) {
		rule := validator.ValidUUID("document_id", "")
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.uuid", rule.Error.TranslationKey)
	})

	t.Run("fails for wrong length", func(t *testing.T) {
		rule := validator.ValidUUID("document_id", "not-a-uuid")
		assert.False(t, rule.Check())
	})

	t.Run("fails for misplaced hyphens", func(t *testing.T) {
		rule := validator.ValidUUID("document_id", "123456789-123-4567-8901-234567890123")
		assert.False(t, rule.Check())
	})
}

func TestNonNilUUID(t *testing.T) {
	t.Run("passes for random UUID", func(t *testing.T) {
		rule := validator.NonNilUUID("document_id", uuid.New())
		assert.True(t, rule.Check())
	})

	t.Run("fails for nil UUID", func(t *testing.T) {
		rule := validator.NonNilUUID("document_id", uuid.Nil)
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.uuid_not_nil", rule.Error.TranslationKey)
	})
}

package strapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Webbist-dev/strapi/pkg/schema"
)

func TestCoerceValue(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		v, err := coerceValue(schema.TypeString, nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("string kinds", func(t *testing.T) {
		cases := []struct {
			in   any
			want string
		}{
			{"hello", "hello"},
			{[]byte("bytes"), "bytes"},
			{42, "42"},
			{int64(7), "7"},
			{3.5, "3.5"},
		}
		for _, tc := range cases {
			v, err := coerceValue(schema.TypeString, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		}

		_, err := coerceValue(schema.TypeUID, map[string]any{})
		assert.ErrorIs(t, err, ErrUncoercibleValue)
	})

	t.Run("integer kinds", func(t *testing.T) {
		for _, in := range []any{3, int32(3), int64(3), uint8(3), float64(3), "3"} {
			v, err := coerceValue(schema.TypeInteger, in)
			require.NoError(t, err, "input %v (%T)", in, in)
			assert.Equal(t, int64(3), v)
		}

		_, err := coerceValue(schema.TypeInteger, 3.5)
		assert.ErrorIs(t, err, ErrUncoercibleValue)

		_, err = coerceValue(schema.TypeBigInteger, "not-a-number")
		assert.ErrorIs(t, err, ErrUncoercibleValue)

		_, err = coerceValue(schema.TypeInteger, uint64(1)<<63)
		assert.ErrorIs(t, err, ErrUncoercibleValue)
	})

	t.Run("float kinds", func(t *testing.T) {
		for _, in := range []any{2, int64(2), float32(2), float64(2), "2"} {
			v, err := coerceValue(schema.TypeFloat, in)
			require.NoError(t, err, "input %v (%T)", in, in)
			assert.Equal(t, float64(2), v)
		}

		v, err := coerceValue(schema.TypeDecimal, "2.75")
		require.NoError(t, err)
		assert.Equal(t, 2.75, v)

		_, err = coerceValue(schema.TypeFloat, true)
		assert.ErrorIs(t, err, ErrUncoercibleValue)
	})

	t.Run("boolean kind", func(t *testing.T) {
		v, err := coerceValue(schema.TypeBoolean, true)
		require.NoError(t, err)
		assert.Equal(t, true, v)

		v, err = coerceValue(schema.TypeBoolean, "false")
		require.NoError(t, err)
		assert.Equal(t, false, v)

		_, err = coerceValue(schema.TypeBoolean, 1)
		assert.ErrorIs(t, err, ErrUncoercibleValue)
	})
}

func TestValuesEqual(t *testing.T) {
	t.Run("numeric equality after coercion", func(t *testing.T) {
		assert.True(t, valuesEqual(schema.TypeInteger, 3, "3"))
		assert.True(t, valuesEqual(schema.TypeInteger, int64(3), float64(3)))
		assert.True(t, valuesEqual(schema.TypeFloat, "2.5", 2.5))
		assert.False(t, valuesEqual(schema.TypeInteger, 3, 4))
	})

	t.Run("string equality after coercion", func(t *testing.T) {
		assert.True(t, valuesEqual(schema.TypeString, "42", 42))
		assert.True(t, valuesEqual(schema.TypeUID, "a-b", []byte("a-b")))
		assert.False(t, valuesEqual(schema.TypeString, "a", "b"))
	})

	t.Run("uncoercible values are never equal", func(t *testing.T) {
		assert.False(t, valuesEqual(schema.TypeInteger, "x", "x"))
	})
}

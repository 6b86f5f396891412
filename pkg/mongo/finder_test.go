package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Webbist-dev/strapi/pkg/query"
)

func TestRenderPredicate(t *testing.T) {
	t.Run("create-case filter matches the attribute directly", func(t *testing.T) {
		doc, err := renderPredicate(query.FindDuplicate("title", "test-data").Where)
		require.NoError(t, err)
		assert.Equal(t, bson.D{{Key: "title", Value: "test-data"}}, doc)
	})

	t.Run("update-case filter renders AND with $ne on _id", func(t *testing.T) {
		doc, err := renderPredicate(query.FindDuplicateExcluding("title", "test-data", int64(1)).Where)
		require.NoError(t, err)

		assert.Equal(t, bson.D{{Key: "$and", Value: bson.A{
			bson.D{{Key: "title", Value: "test-data"}},
			bson.D{{Key: "_id", Value: bson.D{{Key: "$ne", Value: int64(1)}}}},
		}}}, doc)
	})

	t.Run("id attribute maps to _id", func(t *testing.T) {
		doc, err := renderPredicate(query.Eq{Attribute: "id", Value: int64(3)})
		require.NoError(t, err)
		assert.Equal(t, bson.D{{Key: "_id", Value: int64(3)}}, doc)
	})

	t.Run("rejects nil and empty predicates", func(t *testing.T) {
		_, err := renderPredicate(nil)
		assert.ErrorIs(t, err, ErrUnsupportedPredicate)

		_, err = renderPredicate(query.And{})
		assert.ErrorIs(t, err, ErrUnsupportedPredicate)
	})

	t.Run("rejects NOT of anything but equality", func(t *testing.T) {
		_, err := renderPredicate(query.Not{Predicate: query.And{query.Eq{Attribute: "a", Value: 1}}})
		assert.ErrorIs(t, err, ErrUnsupportedPredicate)
	})
}

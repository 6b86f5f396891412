package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Webbist-dev/strapi/pkg/query"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	return nil
}

type fakeQuerier struct {
	row      fakeRow
	lastSQL  string
	lastArgs []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL = sql
	q.lastArgs = args
	return q.row
}

func TestBuildSelect(t *testing.T) {
	t.Run("create-case filter", func(t *testing.T) {
		sql, args, err := buildSelect("articles", query.FindDuplicate("title", "test-data"))
		require.NoError(t, err)

		assert.Equal(t, `SELECT "id" FROM "articles" WHERE "title" = $1 LIMIT 1`, sql)
		assert.Equal(t, []any{"test-data"}, args)
	})

	t.Run("update-case filter excludes the entity id", func(t *testing.T) {
		sql, args, err := buildSelect("articles", query.FindDuplicateExcluding("title", "test-data", int64(1)))
		require.NoError(t, err)

		assert.Equal(t, `SELECT "id" FROM "articles" WHERE ("title" = $1 AND NOT "id" = $2) LIMIT 1`, sql)
		assert.Equal(t, []any{"test-data", int64(1)}, args)
	})

	t.Run("empty select defaults to id", func(t *testing.T) {
		sql, _, err := buildSelect("articles", query.Filter{Where: query.Eq{Attribute: "slug", Value: "x"}})
		require.NoError(t, err)
		assert.Contains(t, sql, `SELECT "id"`)
	})

	t.Run("quotes embedded quotes in identifiers", func(t *testing.T) {
		sql, _, err := buildSelect(`weird"name`, query.FindDuplicate("a", 1))
		require.NoError(t, err)
		assert.Contains(t, sql, `FROM "weird""name"`)
	})

	t.Run("rejects nil and empty predicates", func(t *testing.T) {
		_, _, err := buildSelect("articles", query.Filter{})
		assert.ErrorIs(t, err, ErrUnsupportedPredicate)

		_, _, err = buildSelect("articles", query.Filter{Where: query.And{}})
		assert.ErrorIs(t, err, ErrUnsupportedPredicate)
	})
}

func TestEntityFinderFindOne(t *testing.T) {
	t.Run("returns the matching record id", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{id: 42}}
		f := NewEntityFinder(q, "articles")

		rec, err := f.FindOne(context.Background(), query.FindDuplicate("title", "x"))
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, int64(42), rec.ID)
		assert.Equal(t, []any{"x"}, q.lastArgs)
	})

	t.Run("maps no rows to nil record", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
		f := NewEntityFinder(q, "articles")

		rec, err := f.FindOne(context.Background(), query.FindDuplicate("title", "x"))
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("propagates other errors", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		q := &fakeQuerier{row: fakeRow{err: dbErr}}
		f := NewEntityFinder(q, "articles")

		_, err := f.FindOne(context.Background(), query.FindDuplicate("title", "x"))
		assert.ErrorIs(t, err, dbErr)
	})
}

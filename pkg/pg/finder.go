package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	strapi "github.com/Webbist-dev/strapi"
	"github.com/Webbist-dev/strapi/pkg/query"
)

// rowQuerier is the slice of pgx needed by lookups; *pgxpool.Pool,
// *pgx.Conn, and pgx.Tx all satisfy it.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EntityFinder answers uniqueness lookups against one content type's
// table. It implements the validation layer's Finder interface.
type EntityFinder struct {
	db    rowQuerier
	table string
}

// NewEntityFinder binds a finder to a table. The table name comes from
// the content-type schema, not from user input.
func NewEntityFinder(db rowQuerier, table string) *EntityFinder {
	return &EntityFinder{db: db, table: table}
}

// FindOne renders the filter into parameterized SQL and returns the
// first matching record, or nil when none exists. Any database error
// other than "no rows" propagates untouched.
func (f *EntityFinder) FindOne(ctx context.Context, filter query.Filter) (*strapi.Record, error) {
	sql, args, err := buildSelect(f.table, filter)
	if err != nil {
		return nil, err
	}

	var id int64
	if err := f.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &strapi.Record{ID: id}, nil
}

// buildSelect renders a filter into a single-row SELECT. Values travel
// as bind parameters; identifiers come from the schema and are quoted.
func buildSelect(table string, filter query.Filter) (string, []any, error) {
	cols := filter.Select
	if len(cols) == 0 {
		cols = []string{"id"}
	}
	quotedCols := make([]string, len(cols))
	for i, col := range cols {
		quotedCols[i] = quoteIdent(col)
	}

	var args []any
	where, err := renderPredicate(filter.Where, &args)
	if err != nil {
		return "", nil, err
	}

	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1",
		strings.Join(quotedCols, ", "), quoteIdent(table), where)
	return sql, args, nil
}

func renderPredicate(p query.Predicate, args *[]any) (string, error) {
	switch pred := p.(type) {
	case query.Eq:
		*args = append(*args, pred.Value)
		return fmt.Sprintf("%s = $%d", quoteIdent(pred.Attribute), len(*args)), nil
	case query.And:
		if len(pred) == 0 {
			return "", fmt.Errorf("%w: empty AND", ErrUnsupportedPredicate)
		}
		parts := make([]string, len(pred))
		for i, child := range pred {
			part, err := renderPredicate(child, args)
			if err != nil {
				return "", err
			}
			parts[i] = part
		}
		return "(" + strings.Join(parts, " AND ") + ")", nil
	case query.Not:
		inner, err := renderPredicate(pred.Predicate, args)
		if err != nil {
			return "", err
		}
		return "NOT " + inner, nil
	case nil:
		return "", fmt.Errorf("%w: nil predicate", ErrUnsupportedPredicate)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedPredicate, p)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

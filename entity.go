package strapi

import (
	"context"

	"github.com/google/uuid"

	"github.com/Webbist-dev/strapi/pkg/query"
)

// Record is what a uniqueness lookup returns: the identity of a
// conflicting record. Adapters populate only what the filter selected.
type Record struct {
	ID int64
}

// Finder is the persistence lookup capability consumed by uniqueness
// rules. A Finder is bound to one content type; FindOne returns the
// first record matching the filter, or (nil, nil) when none exists.
// Any lookup error propagates untouched: a failed lookup must never be
// read as "value is unique".
type Finder interface {
	FindOne(ctx context.Context, filter query.Filter) (*Record, error)
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(ctx context.Context, filter query.Filter) (*Record, error)

func (f FinderFunc) FindOne(ctx context.Context, filter query.Filter) (*Record, error) {
	return f(ctx, filter)
}

// Entity is a previously persisted record being modified. Validation
// reads only its id and the stored value of the attribute under check.
type Entity struct {
	ID         int64
	DocumentID uuid.UUID
	Values     map[string]any
}

// Value returns the stored value of an attribute.
func (e *Entity) Value(name string) (any, bool) {
	if e == nil || e.Values == nil {
		return nil, false
	}
	v, ok := e.Values[name]
	return v, ok
}

package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	strapi "github.com/Webbist-dev/strapi"
	"github.com/Webbist-dev/strapi/pkg/query"
)

// ErrUnsupportedPredicate is returned when a filter cannot be rendered to bson.
var ErrUnsupportedPredicate = errors.New("unsupported filter predicate")

// idField is where entity ids live in content collections. The filter
// grammar says "id"; Mongo documents say "_id".
const idField = "_id"

// EntityFinder answers uniqueness lookups against one content type's
// collection. It implements the validation layer's Finder interface.
type EntityFinder struct {
	coll *mongo.Collection
}

// NewEntityFinder binds a finder to a collection, typically named after
// the content type's model name.
func NewEntityFinder(db *mongo.Database, collection string) *EntityFinder {
	return &EntityFinder{coll: db.Collection(collection)}
}

// FindOne renders the filter to bson and returns the first matching
// record, or nil when none exists. Any driver error other than "no
// documents" propagates untouched.
func (f *EntityFinder) FindOne(ctx context.Context, filter query.Filter) (*strapi.Record, error) {
	match, err := renderPredicate(filter.Where)
	if err != nil {
		return nil, err
	}

	projection := bson.D{}
	for _, field := range filter.Select {
		projection = append(projection, bson.E{Key: mapField(field), Value: 1})
	}

	var doc struct {
		ID int64 `bson:"_id"`
	}
	err = f.coll.FindOne(ctx, match, options.FindOne().SetProjection(projection)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &strapi.Record{ID: doc.ID}, nil
}

// renderPredicate translates the filter grammar into a bson document:
// Eq to {attr: value}, And to $and, Not(Eq) to {attr: {$ne: value}}.
func renderPredicate(p query.Predicate) (bson.D, error) {
	switch pred := p.(type) {
	case query.Eq:
		return bson.D{{Key: mapField(pred.Attribute), Value: pred.Value}}, nil
	case query.And:
		if len(pred) == 0 {
			return nil, fmt.Errorf("%w: empty AND", ErrUnsupportedPredicate)
		}
		children := make(bson.A, len(pred))
		for i, child := range pred {
			rendered, err := renderPredicate(child)
			if err != nil {
				return nil, err
			}
			children[i] = rendered
		}
		return bson.D{{Key: "$and", Value: children}}, nil
	case query.Not:
		eq, ok := pred.Predicate.(query.Eq)
		if !ok {
			return nil, fmt.Errorf("%w: NOT of %T", ErrUnsupportedPredicate, pred.Predicate)
		}
		return bson.D{{Key: mapField(eq.Attribute), Value: bson.D{{Key: "$ne", Value: eq.Value}}}}, nil
	case nil:
		return nil, fmt.Errorf("%w: nil predicate", ErrUnsupportedPredicate)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPredicate, p)
	}
}

func mapField(name string) string {
	if name == "id" {
		return idField
	}
	return name
}

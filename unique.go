package strapi

import (
	"context"
	"errors"

	"github.com/Webbist-dev/strapi/pkg/query"
	"github.com/Webbist-dev/strapi/pkg/schema"
	"github.com/Webbist-dev/strapi/pkg/validator"
)

// ErrMissingFinder is returned when a uniqueness check is required but
// the validator was built without a persistence lookup capability.
var ErrMissingFinder = errors.New("uniqueness check requires a finder")

// writeMode distinguishes entity writes. Publish re-checks uniqueness
// even for values the entity already stores, because drafts are allowed
// to hold duplicates right up until they go live.
type writeMode int

const (
	modeCreate writeMode = iota
	modeUpdate
	modePublish
)

// UniquenessViolation is the validation error produced when an attribute
// value already exists on a different record.
func UniquenessViolation(field string, value any) validator.ValidationError {
	return validator.ValidationError{
		Field:          field,
		Message:        "must be unique",
		TranslationKey: "validation.unique",
		TranslationValues: map[string]any{
			"field": field,
			"value": value,
		},
	}
}

// IsUniquenessViolation reports whether err carries a uniqueness
// violation for the given attribute.
func IsUniquenessViolation(err error, field string) bool {
	for _, ve := range validator.ExtractValidationErrors(err) {
		if ve.Field == field && ve.TranslationKey == "validation.unique" {
			return true
		}
	}
	return false
}

// passthrough is attached when no uniqueness check applies: it returns
// the value untouched and never issues a query.
func passthrough(field string) validator.AsyncRule {
	return validator.AsyncRule{
		Field: field,
		Test:  func(context.Context) error { return nil },
	}
}

// uniquenessRule implements the uniqueness decision algorithm once for
// every scalar kind; the uid kind's always-on behavior is folded into
// Attribute.IsUnique and kind-specific equality into valuesEqual.
//
// Decision order: applicability gate, draft exemption, unchanged-value
// no-op, lookup, result interpretation. The first two are known at build
// time, so an exempt attribute gets a passthrough rule that closes over
// nothing.
func uniquenessRule(finder Finder, attr schema.Attribute, vctx ValidationContext, mode writeMode) validator.AsyncRule {
	if !attr.IsUnique() || vctx.IsDraft {
		return passthrough(vctx.AttributeName)
	}
	// A null value clears the attribute; there is nothing to collide with.
	if vctx.Data == nil {
		return passthrough(vctx.AttributeName)
	}

	name := vctx.AttributeName
	value := vctx.Data
	entity := vctx.Entity

	return validator.AsyncRule{
		Field: name,
		Test: func(ctx context.Context) error {
			// Re-saving an entity with its own stored value must not trip
			// on itself. Publish is the exception: a draft may have been
			// holding a duplicate all along.
			if mode != modePublish {
				if stored, ok := entity.Value(name); ok && valuesEqual(attr.Type, stored, value) {
					return nil
				}
			}

			if finder == nil {
				return ErrMissingFinder
			}

			var filter query.Filter
			if entity != nil && entity.ID != 0 {
				filter = query.FindDuplicateExcluding(name, value, entity.ID)
			} else {
				filter = query.FindDuplicate(name, value)
			}

			record, err := finder.FindOne(ctx, filter)
			if err != nil {
				return err
			}
			if record != nil {
				return validator.ValidationErrors{UniquenessViolation(name, value)}
			}
			return nil
		},
	}
}

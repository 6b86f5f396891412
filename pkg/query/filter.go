package query

import (
	"fmt"
	"strings"
)

// Filter is the structured lookup a validation rule hands to a
// persistence adapter: which fields to select and which predicate a
// conflicting record must match.
type Filter struct {
	Select []string
	Where  Predicate
}

// Predicate is a closed set of filter conditions. Adapters render it
// into their native query form with a type switch over Eq, And, and Not.
type Predicate interface {
	fmt.Stringer
	isPredicate()
}

// Eq matches records whose attribute equals a value.
type Eq struct {
	Attribute string
	Value     any
}

func (Eq) isPredicate() {}

func (e Eq) String() string {
	return fmt.Sprintf("%s = %v", e.Attribute, e.Value)
}

// And matches records satisfying every child predicate.
type And []Predicate

func (And) isPredicate() {}

func (a And) String() string {
	parts := make([]string, len(a))
	for i, p := range a {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, " AND ") + ")"
}

// Not inverts a predicate.
type Not struct {
	Predicate Predicate
}

func (Not) isPredicate() {}

func (n Not) String() string {
	return "NOT " + n.Predicate.String()
}

// FindDuplicate builds the filter a uniqueness check issues on create:
// select only the conflicting record's id, matching the attribute value.
func FindDuplicate(attribute string, value any) Filter {
	return Filter{
		Select: []string{"id"},
		Where:  Eq{Attribute: attribute, Value: value},
	}
}

// FindDuplicateExcluding builds the update-case filter: the record under
// modification must not collide with its own stored value, so its id is
// excluded from the match.
func FindDuplicateExcluding(attribute string, value any, excludedID any) Filter {
	return Filter{
		Select: []string{"id"},
		Where: And{
			Eq{Attribute: attribute, Value: value},
			Not{Predicate: Eq{Attribute: "id", Value: excludedID}},
		},
	}
}

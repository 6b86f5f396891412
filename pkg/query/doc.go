// Package query defines the filter grammar shared between validation
// rules and persistence adapters.
//
// The grammar is deliberately tiny: a Filter selects a handful of fields
// and matches records against a Predicate built from Eq, And, and Not.
// That is exactly what a cross-record uniqueness check needs — find the
// id of any record holding a value, optionally excluding the record
// being updated — and nothing more. Adapters (pg, mongo) translate the
// same Filter into their native query language, so rules stay storage
// agnostic.
//
// # Usage
//
//	f := query.FindDuplicateExcluding("slug", "my-article", 42)
//	// SELECT id ... WHERE slug = 'my-article' AND NOT id = 42
package query

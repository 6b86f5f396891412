// Package strapi implements the entity-attribute validation layer of a
// content-management framework: given a content-type schema and an
// incoming data payload, it builds per-attribute validation rule chains
// and enforces cross-record uniqueness through a pluggable persistence
// lookup.
//
// The core is the EntityValidator. For every attribute of a write it
// composes a pipeline of format rules, a required rule, and a
// uniqueness rule, then runs all pipelines and aggregates field-level
// failures into a single validation error. Uniqueness is the
// interesting part: the validator decides per attribute whether a
// database lookup is needed at all (opt-in via the schema's unique
// flag, always-on for the uid kind, never for drafts, never for an
// unchanged value), builds the narrowest possible filter, and treats a
// found record as a violation.
//
// Basic Usage:
//
//	model, _ := reg.Get("api::article.article")
//	finder := pg.NewEntityFinder(pool, model.ModelName)
//	ev := strapi.NewEntityValidator(model, finder)
//
//	coerced, err := ev.ValidateCreate(ctx, map[string]any{
//	    "title": "Hello",
//	    "slug":  "hello",
//	})
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // field-level failures, e.g. a uniqueness violation on "slug"
//	    }
//	    // otherwise the persistence lookup itself failed
//	}
//
// Persistence is consumed through the Finder interface — one
// FindOne(filter) capability — so any storage that can answer "does a
// record with this value exist, excluding this id" can back uniqueness
// checks. The pg and mongo packages provide ready adapters.
//
// A lookup failure is never treated as "the value is unique": it
// propagates to the caller untouched, distinct from validation errors.
package strapi

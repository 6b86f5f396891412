// Package validator provides the rule engine behind content-type
// attribute validation: small, composable Rule values for synchronous
// checks and AsyncRule values for checks that need I/O, such as
// cross-record uniqueness lookups.
//
// A Rule encapsulates a boolean Check function together with rich,
// translation-friendly error metadata. Synchronous rules are evaluated
// with Apply, which aggregates failures into a ValidationErrors slice
// implementing the error interface. Asynchronous rules are evaluated
// with ApplyContext; sync rules are adapted into a chain with Lift, and
// Sequence composes a per-attribute pipeline that stops at the first
// failing stage so a database lookup never runs for a value that already
// failed its format check.
//
// # Architecture
//
// Each source file groups a family of rules for a scalar kind
// (`string_rules.go`, `numeric_rules.go`, `identifier_rules.go`, ...).
// Every exported validation function simply constructs and returns a
// Rule; there is no hidden global state, so the package is stateless and
// goroutine-safe. AsyncRule carries its I/O dependency inside the Test
// closure, injected by whoever built the rule.
//
// # Usage
//
//	err := validator.ApplyContext(ctx,
//	    validator.Sequence("slug",
//	        validator.Lift(validator.ValidUID("slug", slug)),
//	        uniquenessRule,
//	    ),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // field-level failures
//	    }
//	    // otherwise an infrastructure error from a lookup
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface and works with
// errors.As, so callers can distinguish validation failures from
// infrastructure errors: ApplyContext aborts on the first non-validation
// error and returns it untouched.
package validator

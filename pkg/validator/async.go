package validator

import "context"

// AsyncRule is a validation rule whose check needs I/O, typically a
// database round trip. Test returns nil on success, ValidationErrors on
// a validation failure, or any other error to signal an infrastructure
// failure that must not be interpreted as a validation result.
type AsyncRule struct {
	Field string
	Test  func(ctx context.Context) error
}

// Lift adapts a synchronous Rule into an AsyncRule so sync and async
// checks can be composed into one chain.
func Lift(rule Rule) AsyncRule {
	return AsyncRule{
		Field: rule.Error.Field,
		Test: func(context.Context) error {
			if rule.Check() {
				return nil
			}
			return ValidationErrors{rule.Error}
		},
	}
}

// Sequence composes rules into a single AsyncRule that runs them in
// order and stops at the first failure. Later stages never execute once
// an earlier stage has failed, so an expensive check placed last is
// skipped when a cheap one already rejected the value.
func Sequence(field string, rules ...AsyncRule) AsyncRule {
	return AsyncRule{
		Field: field,
		Test: func(ctx context.Context) error {
			for _, rule := range rules {
				if err := rule.Test(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// ApplyContext executes async rules in order and aggregates their
// validation errors, so one field's failure does not hide its siblings.
// A non-validation error aborts immediately and is returned as-is:
// a failed lookup must never pass for a successful validation.
func ApplyContext(ctx context.Context, rules ...AsyncRule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		err := rule.Test(ctx)
		if err == nil {
			continue
		}
		if verrs := ExtractValidationErrors(err); verrs != nil {
			errs = append(errs, verrs...)
			continue
		}
		return err
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

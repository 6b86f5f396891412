package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// InListString validates that a string is one of a closed set of allowed
// values, as declared by enumeration attributes.
func InListString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, candidate := range allowed {
				if value == candidate {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowed,
			},
		},
	}
}

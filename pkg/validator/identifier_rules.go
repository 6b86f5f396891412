package validator

import (
	"regexp"
	"strings"
)

var (
	uidRegex  = regexp.MustCompile(`^[A-Za-z0-9\-_.~]+$`)
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidUID validates uid attribute values: URL-safe identifiers built
// from letters, digits, hyphens, underscores, dots, and tildes.
func ValidUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return uidRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid uid (letters, numbers, hyphens, underscores, dots, and tildes only)",
			TranslationKey: "validation.uid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidSlug validates URL-safe slugs, preventing edge cases like leading/trailing hyphens.
func ValidSlug(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return slugRegex.MatchString(value) && !strings.HasPrefix(value, "-") && !strings.HasSuffix(value, "-")
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid slug (lowercase letters, numbers, and hyphens only)",
			TranslationKey: "validation.slug",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates email format for email attributes. Go's mail
// parser accepts addresses without a dot in the domain, which is valid
// per RFC but useless on the web, so the domain shape is checked too.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

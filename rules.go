package strapi

import (
	"github.com/Webbist-dev/strapi/pkg/schema"
	"github.com/Webbist-dev/strapi/pkg/validator"
)

// Per-kind format rule factories. Each receives the coerced value and
// returns the synchronous rules derived from the attribute's
// constraints. The uniqueness stage is deliberately not built here: all
// kinds share one uniqueness algorithm, attached by attributePipeline.

func stringRules(name string, attr schema.Attribute, value string) []validator.Rule {
	var rules []validator.Rule
	if attr.MinLength != nil {
		rules = append(rules, validator.MinLenString(name, value, *attr.MinLength))
	}
	if attr.MaxLength != nil {
		rules = append(rules, validator.MaxLenString(name, value, *attr.MaxLength))
	}
	return rules
}

func emailRules(name string, attr schema.Attribute, value string) []validator.Rule {
	return append([]validator.Rule{validator.ValidEmail(name, value)}, stringRules(name, attr, value)...)
}

func uidRules(name string, attr schema.Attribute, value string) []validator.Rule {
	return append([]validator.Rule{validator.ValidUID(name, value)}, stringRules(name, attr, value)...)
}

func enumerationRules(name string, attr schema.Attribute, value string) []validator.Rule {
	return []validator.Rule{validator.InListString(name, value, attr.Enum)}
}

func integerRules(name string, attr schema.Attribute, value int64) []validator.Rule {
	var rules []validator.Rule
	if attr.Min != nil {
		rules = append(rules, validator.MinNum(name, float64(value), *attr.Min))
	}
	if attr.Max != nil {
		rules = append(rules, validator.MaxNum(name, float64(value), *attr.Max))
	}
	return rules
}

func floatRules(name string, attr schema.Attribute, value float64) []validator.Rule {
	var rules []validator.Rule
	if attr.Min != nil {
		rules = append(rules, validator.MinNum(name, value, *attr.Min))
	}
	if attr.Max != nil {
		rules = append(rules, validator.MaxNum(name, value, *attr.Max))
	}
	return rules
}

// formatRules dispatches to the factory for the attribute's kind.
func formatRules(name string, attr schema.Attribute, value any) []validator.Rule {
	if value == nil {
		return nil
	}
	switch attr.Type {
	case schema.TypeString, schema.TypeText:
		return stringRules(name, attr, value.(string))
	case schema.TypeEmail:
		return emailRules(name, attr, value.(string))
	case schema.TypeUID:
		return uidRules(name, attr, value.(string))
	case schema.TypeEnumeration:
		return enumerationRules(name, attr, value.(string))
	case schema.TypeInteger, schema.TypeBigInteger:
		return integerRules(name, attr, value.(int64))
	case schema.TypeFloat, schema.TypeDecimal:
		return floatRules(name, attr, value.(float64))
	default:
		return nil
	}
}

func requiredError(name string) validator.ValidationError {
	return validator.ValidationError{
		Field:          name,
		Message:        "field is required",
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": name,
		},
	}
}

// attributePipeline composes one attribute's chain: format rules, then
// the required rule, then the uniqueness rule. Stages run in order and
// stop at the first failure, so a value that fails its format check
// never reaches the database.
func attributePipeline(finder Finder, attr schema.Attribute, vctx ValidationContext, mode writeMode) validator.AsyncRule {
	var stages []validator.AsyncRule

	for _, rule := range formatRules(vctx.AttributeName, attr, vctx.Data) {
		stages = append(stages, validator.Lift(rule))
	}

	if attr.Required && !vctx.IsDraft {
		if s, ok := vctx.Data.(string); ok {
			stages = append(stages, validator.Lift(validator.RequiredString(vctx.AttributeName, s)))
		}
	}

	stages = append(stages, uniquenessRule(finder, attr, vctx, mode))

	return validator.Sequence(vctx.AttributeName, stages...)
}

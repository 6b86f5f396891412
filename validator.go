package strapi

import (
	"context"
	"fmt"

	"github.com/Webbist-dev/strapi/pkg/schema"
	"github.com/Webbist-dev/strapi/pkg/uid"
	"github.com/Webbist-dev/strapi/pkg/validator"
)

// EntityValidator validates entity writes against a content-type schema.
// One validator serves one content type; it holds no per-request state
// and is safe for concurrent use.
type EntityValidator struct {
	model  *schema.Schema
	finder Finder
}

// NewEntityValidator builds a validator for a content type. The finder
// is the persistence lookup used by uniqueness checks; it may be nil
// only for schemas without unique attributes.
func NewEntityValidator(model *schema.Schema, finder Finder) *EntityValidator {
	return &EntityValidator{model: model, finder: finder}
}

// ValidateCreate validates a new entity payload and returns it with
// values coerced to their declared kinds. Defaults fill absent
// attributes, and uid attributes with a target field are derived from
// the target's value when not supplied. When the schema enables
// draft/publish, a create is a draft write and skips required and
// uniqueness enforcement.
func (v *EntityValidator) ValidateCreate(ctx context.Context, data map[string]any) (map[string]any, error) {
	return v.validate(ctx, nil, v.deriveUIDs(data), modeCreate)
}

// ValidateUpdate validates a partial update of an existing entity.
// Attributes absent from the payload are left untouched and not
// validated. An unchanged unique value never triggers a lookup, so an
// entity can always be re-saved as-is.
func (v *EntityValidator) ValidateUpdate(ctx context.Context, entity *Entity, data map[string]any) (map[string]any, error) {
	return v.validate(ctx, entity, data, modeUpdate)
}

// ValidatePublish validates the entity as it would go live: the stored
// values merged with the payload, with required and uniqueness fully
// enforced. Duplicates tolerated while drafting are caught here.
func (v *EntityValidator) ValidatePublish(ctx context.Context, entity *Entity, data map[string]any) (map[string]any, error) {
	merged := make(map[string]any)
	if entity != nil {
		for name, value := range entity.Values {
			merged[name] = value
		}
	}
	for name, value := range data {
		merged[name] = value
	}
	return v.validate(ctx, entity, merged, modePublish)
}

// deriveUIDs fills absent uid attributes from their target attribute.
// The caller's map is never mutated; a copy is made only when a value
// is actually derived.
func (v *EntityValidator) deriveUIDs(data map[string]any) map[string]any {
	var derived map[string]any
	for _, name := range v.model.AttributeNames() {
		attr, _ := v.model.Attribute(name)
		if attr.Type != schema.TypeUID || attr.TargetField == "" {
			continue
		}
		if cur, ok := data[name]; ok && cur != nil && cur != "" {
			continue
		}
		source, ok := data[attr.TargetField].(string)
		if !ok || source == "" {
			continue
		}
		var opts []uid.Option
		if attr.MaxLength != nil {
			opts = append(opts, uid.MaxLength(*attr.MaxLength))
		}
		if derived == nil {
			derived = make(map[string]any, len(data)+1)
			for k, val := range data {
				derived[k] = val
			}
		}
		derived[name] = uid.Generate(source, opts...)
	}
	if derived == nil {
		return data
	}
	return derived
}

func (v *EntityValidator) validate(ctx context.Context, entity *Entity, data map[string]any, mode writeMode) (map[string]any, error) {
	isDraft := mode != modePublish && v.model.Options.DraftAndPublish

	var verrs validator.ValidationErrors
	out := make(map[string]any, len(data))
	var pipelines []validator.AsyncRule

	for name := range data {
		if _, ok := v.model.Attribute(name); !ok {
			verrs.Add(validator.ValidationError{
				Field:          name,
				Message:        "attribute does not exist",
				TranslationKey: "validation.unknown_attribute",
				TranslationValues: map[string]any{
					"field": name,
				},
			})
		}
	}

	for _, name := range v.model.AttributeNames() {
		attr, _ := v.model.Attribute(name)

		// Incoming writes to private attributes are discarded, the same
		// way they are stripped from outgoing payloads.
		if v.model.IsPrivate(name) {
			continue
		}

		raw, present := data[name]
		if !present && mode == modeCreate && attr.Default != nil {
			raw, present = attr.Default, true
		}

		if !present {
			// A partial update leaves absent attributes untouched.
			if mode != modeUpdate && attr.Required && !isDraft {
				verrs.Add(requiredError(name))
			}
			continue
		}

		coerced, err := coerceValue(attr.Type, raw)
		if err != nil {
			verrs.Add(validator.ValidationError{
				Field:          name,
				Message:        fmt.Sprintf("must be a valid %s", attr.Type),
				TranslationKey: "validation.invalid_type",
				TranslationValues: map[string]any{
					"field": name,
					"type":  string(attr.Type),
				},
			})
			continue
		}

		if coerced == nil {
			if attr.Required && !isDraft {
				verrs.Add(requiredError(name))
				continue
			}
			out[name] = nil
			continue
		}

		out[name] = coerced

		vctx := ValidationContext{
			IsDraft:       isDraft,
			Model:         v.model,
			AttributeName: name,
			Entity:        entity,
			Data:          coerced,
		}
		pipelines = append(pipelines, attributePipeline(v.finder, attr, vctx, mode))
	}

	if err := validator.ApplyContext(ctx, pipelines...); err != nil {
		more := validator.ExtractValidationErrors(err)
		if more == nil {
			return nil, err
		}
		verrs = append(verrs, more...)
	}

	if !verrs.IsEmpty() {
		return nil, verrs
	}
	return out, nil
}

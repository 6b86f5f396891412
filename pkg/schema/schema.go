package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Kind distinguishes standalone content types from reusable components.
type Kind string

const (
	KindContentType Kind = "contentType"
	KindComponent   Kind = "component"
)

// Options holds free-form per-schema settings.
type Options struct {
	// DraftAndPublish enables the draft state for entities of this type.
	// Draft writes are exempt from uniqueness enforcement.
	DraftAndPublish bool `yaml:"draftAndPublish" json:"draftAndPublish"`
}

// Schema describes one content type: its identity, attribute
// descriptors, private attribute names, and options. A Schema is
// immutable once registered.
type Schema struct {
	UID               string               `yaml:"uid" json:"uid"`
	ModelName         string               `yaml:"modelName" json:"modelName"`
	Kind              Kind                 `yaml:"kind" json:"kind"`
	Attributes        map[string]Attribute `yaml:"attributes" json:"attributes"`
	PrivateAttributes []string             `yaml:"privateAttributes" json:"privateAttributes,omitempty"`
	Options           Options              `yaml:"options" json:"options"`
}

// Attribute returns the descriptor for a named attribute.
func (s *Schema) Attribute(name string) (Attribute, bool) {
	attr, ok := s.Attributes[name]
	return attr, ok
}

// AttributeNames returns attribute names in lexical order, giving
// validation passes a deterministic iteration order.
func (s *Schema) AttributeNames() []string {
	names := make([]string, 0, len(s.Attributes))
	for name := range s.Attributes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsPrivate reports whether an attribute is hidden from incoming
// payloads, either via its own flag or the schema-level list.
func (s *Schema) IsPrivate(name string) bool {
	if attr, ok := s.Attributes[name]; ok && attr.Private {
		return true
	}
	return slices.Contains(s.PrivateAttributes, name)
}

// Validate checks the schema shape once, at load time. A schema that
// passes needs no defensive checks during validation passes.
func (s *Schema) Validate() error {
	var problems []string

	if strings.TrimSpace(s.UID) == "" {
		problems = append(problems, "uid is required")
	}
	if strings.TrimSpace(s.ModelName) == "" {
		problems = append(problems, "modelName is required")
	}
	switch s.Kind {
	case KindContentType, KindComponent:
	default:
		problems = append(problems, fmt.Sprintf("unknown kind %q", s.Kind))
	}
	if len(s.Attributes) == 0 {
		problems = append(problems, "at least one attribute is required")
	}

	for _, name := range s.AttributeNames() {
		attr := s.Attributes[name]
		if !attr.Type.IsValid() {
			problems = append(problems, fmt.Sprintf("attribute %q: unknown type %q", name, attr.Type))
			continue
		}
		if attr.Type == TypeEnumeration && len(attr.Enum) == 0 {
			problems = append(problems, fmt.Sprintf("attribute %q: enumeration requires enum values", name))
		}
		if attr.Type == TypeUID && attr.TargetField != "" {
			target, ok := s.Attributes[attr.TargetField]
			if !ok {
				problems = append(problems, fmt.Sprintf("attribute %q: targetField %q does not exist", name, attr.TargetField))
			} else if target.Type != TypeString && target.Type != TypeText {
				problems = append(problems, fmt.Sprintf("attribute %q: targetField %q must be a string attribute", name, attr.TargetField))
			}
		}
		if attr.MinLength != nil && attr.MaxLength != nil && *attr.MinLength > *attr.MaxLength {
			problems = append(problems, fmt.Sprintf("attribute %q: minLength exceeds maxLength", name))
		}
		if attr.Min != nil && attr.Max != nil && *attr.Min > *attr.Max {
			problems = append(problems, fmt.Sprintf("attribute %q: min exceeds max", name))
		}
	}

	for _, name := range s.PrivateAttributes {
		if _, ok := s.Attributes[name]; !ok {
			problems = append(problems, fmt.Sprintf("privateAttributes references unknown attribute %q", name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrInvalidSchema, s.UID, strings.Join(problems, "; "))
	}
	return nil
}

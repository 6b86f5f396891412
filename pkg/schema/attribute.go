package schema

// ScalarKind identifies the primitive type of an attribute. It governs
// format validation, value coercion, and comparison semantics.
type ScalarKind string

const (
	TypeString      ScalarKind = "string"
	TypeText        ScalarKind = "text"
	TypeInteger     ScalarKind = "integer"
	TypeBigInteger  ScalarKind = "biginteger"
	TypeFloat       ScalarKind = "float"
	TypeDecimal     ScalarKind = "decimal"
	TypeBoolean     ScalarKind = "boolean"
	TypeEmail       ScalarKind = "email"
	TypeEnumeration ScalarKind = "enumeration"
	TypeUID         ScalarKind = "uid"
)

var scalarKinds = map[ScalarKind]bool{
	TypeString:      true,
	TypeText:        true,
	TypeInteger:     true,
	TypeBigInteger:  true,
	TypeFloat:       true,
	TypeDecimal:     true,
	TypeBoolean:     true,
	TypeEmail:       true,
	TypeEnumeration: true,
	TypeUID:         true,
}

// IsValid reports whether the kind is one of the supported scalar kinds.
func (k ScalarKind) IsValid() bool {
	return scalarKinds[k]
}

// IsNumeric reports whether values of this kind compare numerically.
func (k ScalarKind) IsNumeric() bool {
	switch k {
	case TypeInteger, TypeBigInteger, TypeFloat, TypeDecimal:
		return true
	default:
		return false
	}
}

// Attribute describes a single content-type attribute. The shape is
// validated once at schema load time, so downstream code can rely on the
// fields without defensive checks.
type Attribute struct {
	Type     ScalarKind `yaml:"type" json:"type"`
	Unique   bool       `yaml:"unique" json:"unique"`
	Required bool       `yaml:"required" json:"required"`
	Private  bool       `yaml:"private" json:"private"`
	Default  any        `yaml:"default" json:"default,omitempty"`

	// String-like constraints.
	MinLength *int `yaml:"minLength" json:"minLength,omitempty"`
	MaxLength *int `yaml:"maxLength" json:"maxLength,omitempty"`

	// Numeric constraints.
	Min *float64 `yaml:"min" json:"min,omitempty"`
	Max *float64 `yaml:"max" json:"max,omitempty"`

	// Enumeration values.
	Enum []string `yaml:"enum" json:"enum,omitempty"`

	// TargetField names the attribute a uid value is generated from.
	TargetField string `yaml:"targetField" json:"targetField,omitempty"`
}

// IsUnique reports whether writes to this attribute must be checked for
// cross-record uniqueness. The uid kind is always unique regardless of
// the flag; every other kind opts in via Unique.
func (a Attribute) IsUnique() bool {
	return a.Type == TypeUID || a.Unique
}

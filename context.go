package strapi

import "github.com/Webbist-dev/strapi/pkg/schema"

// ValidationContext carries the per-attribute state of one entity write.
// A fresh context is built for every attribute of every write; it is
// never shared across attributes or requests.
type ValidationContext struct {
	// IsDraft marks a write targeting a draft entity. Draft writes are
	// exempt from required and uniqueness enforcement.
	IsDraft bool

	// Model is the content-type schema owning the attribute.
	Model *schema.Schema

	// AttributeName is the attribute under validation.
	AttributeName string

	// Entity is the previously persisted record on update, nil on create.
	Entity *Entity

	// Data is the incoming value for the attribute, already coerced to
	// the attribute's declared kind.
	Data any
}

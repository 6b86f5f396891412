// Package schema models content-type schemas: the mapping of attribute
// names to typed descriptors that drives entity validation.
//
// A Schema identifies a content type (uid, model name, kind) and holds
// its Attribute descriptors. Descriptors are closed scalar-kind variants
// with explicit Unique and Required fields, validated once when the
// schema is registered, so validation passes never need defensive type
// checks against loosely shaped definitions.
//
// The uid scalar kind is implicitly unique: Attribute.IsUnique folds
// that rule in, and callers should never consult the Unique flag
// directly.
//
// # Usage
//
//	reg := schema.NewRegistry()
//	if err := reg.LoadFS(os.DirFS("./schemas")); err != nil {
//	    log.Fatal(err)
//	}
//	article, err := reg.Get("api::article.article")
//
// Schema documents are YAML:
//
//	uid: api::article.article
//	modelName: article
//	kind: contentType
//	options:
//	  draftAndPublish: true
//	attributes:
//	  title:
//	    type: string
//	    required: true
//	    unique: true
//	  slug:
//	    type: uid
//	    targetField: title
package schema

// Package uid derives UID attribute values from human-readable source strings.
//
// UID attributes hold unique, URL-safe identifiers for entities, usually derived
// from another attribute such as a title. Generate converts any string into that
// format by replacing spaces and special characters with a separator, normalizing
// Unicode characters, and optionally adding a random suffix to avoid clashes with
// existing values.
//
// # Features
//
// The generator supports several features:
//   - Unicode normalization (converts diacritics to ASCII equivalents)
//   - Configurable separators restricted to the UID alphabet ("-", "_", ".", "~")
//   - Maximum length enforcement with proper Unicode handling
//   - Custom string replacements (e.g., "&" → "and")
//   - Random suffix generation for collision avoidance
//
// # Usage
//
// Basic usage is straightforward:
//
//	import "github.com/Webbist-dev/strapi/pkg/uid"
//
//	// Derive a UID from a title
//	value := uid.Generate("Hello World!")
//	// Result: "hello-world"
//
//	// With custom options
//	value := uid.Generate("Price: $99.99",
//		uid.MaxLength(10),
//		uid.Replacements(map[string]string{"$": "usd"}),
//	)
//	// Result: "price-usd9"
//
// When a derived value collides with an existing entity, regenerate with
// WithSuffix to append a random discriminator:
//
//	value := uid.Generate("Hello World", uid.WithSuffix(6))
//	// Result: "hello-world-x7g3k2"
//
// # Unicode Support
//
// The package includes built-in support for normalizing common diacritics to their
// ASCII equivalents. For example, "café" becomes "cafe", and "naïve" becomes "naive".
// The output always satisfies the UID attribute character set.
//
// # Thread Safety
//
// All functions in this package are thread-safe. The random suffix generation uses
// crypto/rand for secure random number generation.
package uid

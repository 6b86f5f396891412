// Package mongo backs the content store with MongoDB through the
// official driver. It provides environment-driven connection management
// and the EntityFinder that answers uniqueness lookups issued by entity
// validation, making MongoDB a drop-in alternative to the pg adapter.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "content")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	finder := mongo.NewEntityFinder(db, "articles")
//	ev := strapi.NewEntityValidator(model, finder)
//
// # Configuration
//
// Configuration is entirely environment-driven, so the same binary runs
// against development, staging, and production clusters without config
// files. Connection retries handle transient failures from managed
// MongoDB offerings.
//
// # Error Handling
//
// Lookup misses map mongo.ErrNoDocuments to a nil record, because "no
// conflicting document" is the success path of a uniqueness check.
// Every other driver error propagates untouched. Connection failures
// are wrapped in package sentinels compatible with errors.Is.
package mongo

// Package config provides a type-safe, generic and cached way to load
// framework configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`
// to deliver a small API that loads a default `.env` file when present,
// parses the environment into any Go struct using field tags, and caches
// each successfully loaded configuration type so it is parsed once per
// process. Adapter packages (pg, mongo) declare their Config structs
// with env tags and leave the loading to this package.
//
// # Usage
//
//	var dbConfig pg.Config
//	if err := config.Load(&dbConfig); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure for configuration the process cannot start
// without:
//
//	var dbConfig pg.Config
//	config.MustLoad(&dbConfig)
//
// # Concurrency
//
// Each configuration type is parsed at most once, guarded by a per-type
// sync.Once; concurrent loads of the same type observe the cached copy.
package config

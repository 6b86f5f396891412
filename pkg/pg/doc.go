// Package pg backs the content store with PostgreSQL using the pgx/v5
// driver. It bundles connection pooling, migrations, health checks, and
// common error helpers, plus the EntityFinder that answers the
// uniqueness lookups issued by entity validation.
//
// # Architecture
//
// Four cooperating building blocks:
//
//   - Config: a declarative struct populated from environment variables
//     via github.com/caarlos0/env. It controls pool limits, health-check
//     cadence, and migration paths.
//
//   - Connect: opens a *pgxpool.Pool from Config, retrying with
//     backoff until the database becomes available.
//
//   - Migrate: runs goose migrations against the same pool, so content
//     tables exist before validation starts issuing lookups.
//
//   - EntityFinder: renders the query package's filter grammar into
//     parameterized SQL against one content type's table and satisfies
//     the validation layer's Finder interface.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	finder := pg.NewEntityFinder(pool, "articles")
//	ev := strapi.NewEntityValidator(model, finder)
//
// # Error Handling
//
// Lookup misses map pgx.ErrNoRows to a nil record, because "no
// conflicting record" is the success path of a uniqueness check. Every
// other error propagates untouched. The Is* helpers classify common
// PostgreSQL failures (duplicate key, foreign key, closed transaction)
// with errors.Is / errors.As.
package pg

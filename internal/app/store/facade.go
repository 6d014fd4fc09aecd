package store

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/store/document"
	"github.com/mertcan/placeport/internal/app/store/postgres"
	"github.com/mertcan/placeport/internal/config"
	"github.com/mertcan/placeport/internal/db"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

// Both backends must cover the full contract.
var (
	_ Store = (*postgres.Store)(nil)
	_ Store = (*document.Store)(nil)
)

// Facade binds the store contract to the backend named in configuration.
// When the document backend is selected but unreachable at startup, the
// facade falls back to the relational backend and records that it did so.
type Facade struct {
	Store

	backend  string
	fellBack bool
	pg       *db.PostgresDB
}

// Backend reports which backend the facade is actually serving from.
func (f *Facade) Backend() string { return f.backend }

// FellBack reports whether the configured backend was unavailable and the
// facade is serving from the relational fallback instead.
func (f *Facade) FellBack() bool { return f.fellBack }

// PostgresDB exposes the relational connection when the facade serves
// from it, for migrations and seeding. Nil on the document backend.
func (f *Facade) PostgresDB() *db.PostgresDB { return f.pg }

// Open connects the backend selected by cfg.Store.Backend. Fallback runs
// in one direction only: redis falls back to postgres, never the reverse.
// ErrBackendUnavailable is returned only when no backend could be opened.
func Open(cfg *config.Config, logger zerolog.Logger) (*Facade, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := db.NewRedisClient(cfg)
		if err == nil {
			logger.Info().Str("backend", config.BackendRedis).Msg("Store backend connected")
			return &Facade{
				Store:   document.New(client, logger),
				backend: config.BackendRedis,
			}, nil
		}

		logger.Warn().Err(err).Msg("Document backend unavailable, falling back to postgres")

		database, pgErr := db.NewPostgresDB(cfg)
		if pgErr != nil {
			return nil, fmt.Errorf("%w: redis: %v, postgres: %v",
				apperrors.ErrBackendUnavailable, err, pgErr)
		}
		return &Facade{
			Store:    postgres.New(database, logger),
			backend:  config.BackendPostgres,
			fellBack: true,
			pg:       database,
		}, nil

	case config.BackendPostgres:
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: postgres: %v", apperrors.ErrBackendUnavailable, err)
		}
		logger.Info().Str("backend", config.BackendPostgres).Msg("Store backend connected")
		return &Facade{
			Store:   postgres.New(database, logger),
			backend: config.BackendPostgres,
			pg:      database,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

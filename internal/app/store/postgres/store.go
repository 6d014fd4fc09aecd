// Package postgres is the relational store backend, built on pgx.
package postgres

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/db"
)

// Store implements the full store contract over PostgreSQL.
type Store struct {
	db     *db.PostgresDB
	pool   *pgxpool.Pool
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

// New creates a postgres-backed store.
func New(database *db.PostgresDB, logger zerolog.Logger) *Store {
	return &Store{
		db:     database,
		pool:   database.Pool,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: logger,
	}
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.db.Close()
}

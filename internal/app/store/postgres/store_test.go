package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/app/store/postgres"
	"github.com/mertcan/placeport/internal/app/store/storetest"
	"github.com/mertcan/placeport/internal/db"
)

// TestPostgresStoreConformance runs the shared contract suite against a
// real database. It needs TEST_DATABASE_URL pointing at a database with
// the migrations already applied; without it the test is skipped.
func TestPostgresStoreConformance(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	newStore := func(t *testing.T) store.Store {
		t.Helper()
		_, err := pool.Exec(ctx, `
			TRUNCATE users, student_profiles, companies, job_postings,
				job_applications, notifications
			RESTART IDENTITY CASCADE`)
		require.NoError(t, err)

		return postgres.New(&db.PostgresDB{Pool: pool}, zerolog.Nop())
	}

	storetest.Run(t, newStore)
}

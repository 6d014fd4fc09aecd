package document_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/app/store/document"
	"github.com/mertcan/placeport/internal/app/store/storetest"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return document.New(client, zerolog.Nop())
}

func TestDocumentStoreConformance(t *testing.T) {
	storetest.Run(t, newTestStore)
}

func TestDocumentStoreIndexKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := document.New(client, zerolog.Nop())
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, "Arun Kumar", "arun@x.edu", "Passw0rd!", models.RoleStudent)
	require.NoError(t, err)

	// The email index must resolve to the user document's ID.
	idx, err := mr.Get("user:email:arun@x.edu")
	require.NoError(t, err)
	assert.Equal(t, "1", idx)
	assert.Equal(t, int64(1), userID)

	exists, err := s.EmailExists(ctx, "arun@x.edu")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.EmailExists(ctx, "other@x.edu")
	require.NoError(t, err)
	assert.False(t, exists)
}

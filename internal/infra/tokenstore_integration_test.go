//go:build integration

package infra

// Token store integration tests against a real Redis via testcontainers.
// Run with: go test -tags integration ./internal/infra/... -v

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupTokenStore(t *testing.T) TokenStore {
	t.Helper()
	ctx := context.Background()

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := NewRedis(url)
	require.NoError(t, err)
	return NewRedisTokenStore(rdb)
}

func TestRedisTokenStore_SaveLookup(t *testing.T) {
	store := setupTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, "tok-abc", userID))

	got, err := store.Lookup(ctx, "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestRedisTokenStore_LookupUnknown(t *testing.T) {
	store := setupTokenStore(t)

	_, err := store.Lookup(context.Background(), "never-saved")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedisTokenStore_RevokeIdempotent(t *testing.T) {
	store := setupTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, "tok-xyz", userID))
	require.NoError(t, store.Revoke(ctx, "tok-xyz"))

	_, err := store.Lookup(ctx, "tok-xyz")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Revoking again, or revoking a token that never existed, still succeeds.
	assert.NoError(t, store.Revoke(ctx, "tok-xyz"))
	assert.NoError(t, store.Revoke(ctx, "ghost"))
}

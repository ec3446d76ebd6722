package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/labora-api/internal/infrastructure/cache"
)

func newStore(t *testing.T) (*cache.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewSessionStore(client), mr
}

func TestSessionStore_RevocarYConsultar(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked, "otros tokens no se ven afectados")
}

func TestSessionStore_ExpiraConElToken(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))
	mr.FastForward(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "la entrada vence junto con el token")
}

func TestSessionStore_TTLCeroNoEscribe(t *testing.T) {
	store, mr := newStore(t)

	require.NoError(t, store.Revoke(context.Background(), "jti-1", 0))
	assert.Empty(t, mr.Keys())
}

func TestSessionStore_RedisCaido(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
}

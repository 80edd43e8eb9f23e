package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magazzino-api/internal/infrastructure/cache"
)

func TestIdempotencyStore_Claim(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := cache.NewIdempotencyStore(client, time.Minute)
	ctx := context.Background()

	ok, err := store.Claim(ctx, "apply:u1:abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Claim(ctx, "apply:u1:abc")
	require.NoError(t, err)
	assert.False(t, ok, "la segunda reserva dentro del TTL se rechaza")

	mr.FastForward(2 * time.Minute)
	ok, err = store.Claim(ctx, "apply:u1:abc")
	require.NoError(t, err)
	assert.True(t, ok, "tras el TTL la clave vuelve a estar libre")
}

func TestIdempotencyStore_Release(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := cache.NewIdempotencyStore(client, time.Minute)
	ctx := context.Background()

	ok, err := store.Claim(ctx, "confirm:u1:k-1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Release(ctx, "confirm:u1:k-1"))
	assert.False(t, mr.Exists("magazzino:idem:confirm:u1:k-1"))

	ok, err = store.Claim(ctx, "confirm:u1:k-1")
	require.NoError(t, err)
	assert.True(t, ok, "una clave liberada se puede reservar de nuevo")

	assert.NoError(t, store.Release(ctx, "inexistente"))
}

func TestIdempotencyStore_RedisCaido(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	_, err := cache.NewIdempotencyStore(client, 0).Claim(context.Background(), "k")
	assert.Error(t, err)
}

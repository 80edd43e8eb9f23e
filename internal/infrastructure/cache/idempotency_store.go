// Package cache implementa almacenes efímeros sobre Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/magazzino-api/internal/application/ports"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

const idempotencyPrefix = "magazzino:idem:"

// IdempotencyStore reserva claves de idempotencia con SETNX y TTL.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore construye el almacén. ttl <= 0 usa 10 minutos.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Claim devuelve true si la clave era nueva y queda reservada durante el TTL.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, idempotencyPrefix+key, time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis: reservar clave de idempotencia: %w", err)
	}
	return ok, nil
}

// Release borra la reserva; una clave inexistente no es error.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, idempotencyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis: liberar clave de idempotencia: %w", err)
	}
	return nil
}

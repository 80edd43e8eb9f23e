package ports

import "context"

// IdempotencyStore reserva claves de idempotencia por un tiempo limitado.
type IdempotencyStore interface {
	// Claim devuelve true si la clave no se había usado y queda reservada.
	Claim(ctx context.Context, key string) (bool, error)
	// Release libera una clave reservada para que un reintento pueda usarla.
	Release(ctx context.Context, key string) error
}

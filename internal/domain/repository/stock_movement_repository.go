package repository

import (
	"context"

	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

// StockMovementRepository diario de movimientos aplicados.
type StockMovementRepository interface {
	Create(ctx context.Context, mov *entity.StockMovement) error
	// ListRecent devuelve los últimos movimientos, más reciente primero.
	ListRecent(ctx context.Context, limit int) ([]*entity.StockMovement, error)
}

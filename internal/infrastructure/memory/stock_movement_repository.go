package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo diario de movimientos en memoria.
type StockMovementRepo struct {
	mu   sync.RWMutex
	list []entity.StockMovement
}

// NewStockMovementRepository construye el diario vacío.
func NewStockMovementRepository() *StockMovementRepo {
	return &StockMovementRepo{}
}

func (r *StockMovementRepo) Create(_ context.Context, mov *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, *mov)
	return nil
}

func (r *StockMovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.StockMovement, 0, min(limit, len(r.list)))
	for i := len(r.list) - 1; i >= 0 && len(out) < limit; i-- {
		m := r.list[i]
		out = append(out, &m)
	}
	return out, nil
}

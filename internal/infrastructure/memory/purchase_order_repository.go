package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo historia en memoria, más reciente primero.
type PurchaseOrderRepo struct {
	mu     sync.RWMutex
	orders []*entity.PurchaseOrder
}

// NewPurchaseOrderRepository construye la historia con órdenes previas (ya en orden más reciente primero).
func NewPurchaseOrderRepository(orders ...*entity.PurchaseOrder) *PurchaseOrderRepo {
	r := &PurchaseOrderRepo{}
	for _, o := range orders {
		r.orders = append(r.orders, o.Clone())
	}
	return r
}

// Append antepone la orden.
func (r *PurchaseOrderRepo) Append(_ context.Context, order *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]*entity.PurchaseOrder{order.Clone()}, r.orders...)
	return nil
}

// ListAll devuelve copias, más reciente primero.
func (r *PurchaseOrderRepo) ListAll(_ context.Context) ([]*entity.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		list = append(list, o.Clone())
	}
	return list, nil
}

// GetByID busca la orden más reciente con ese ID (los IDs no se verifican como únicos).
func (r *PurchaseOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, id)
}

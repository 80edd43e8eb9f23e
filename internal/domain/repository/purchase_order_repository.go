package repository

import (
	"context"

	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

// PurchaseOrderRepository historia de órdenes de compra: sólo altas, sin update ni delete.
type PurchaseOrderRepository interface {
	// Append inserta la orden al frente (la más reciente primero).
	Append(ctx context.Context, order *entity.PurchaseOrder) error
	// ListAll devuelve la historia completa, más reciente primero.
	ListAll(ctx context.Context) ([]*entity.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
}

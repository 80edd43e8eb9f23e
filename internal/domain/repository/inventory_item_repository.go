package repository

import (
	"context"

	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

// ItemUpdate campos editables de un ítem; nil = no cambia.
type ItemUpdate struct {
	Name     *string
	SKU      *string
	MinStock *int
}

// InventoryItemRepository define el puerto de persistencia para InventoryItem (DIP).
// Las implementaciones devuelven copias: mutar el resultado no altera el almacén.
type InventoryItemRepository interface {
	// List devuelve todos los ítems en orden de inserción; warehouse vacío = todas las bodegas.
	List(ctx context.Context, warehouse entity.WarehouseName) ([]*entity.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	// GetForUpdate igual que GetByID pero bloquea el registro hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)
	Create(ctx context.Context, item *entity.InventoryItem) error
	Update(ctx context.Context, id string, fields ItemUpdate) (*entity.InventoryItem, error)
	SetQuantity(ctx context.Context, id string, quantity int) (*entity.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

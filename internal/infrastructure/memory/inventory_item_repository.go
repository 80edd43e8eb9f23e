// Package memory implementa los puertos de persistencia en memoria del proceso.
// Es el backend por defecto cuando no hay PostgreSQL configurado; no ofrece durabilidad.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo guarda los ítems en orden de inserción con índice por ID.
type InventoryItemRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*entity.InventoryItem
	now   func() time.Time
}

// NewInventoryItemRepository construye el repositorio, opcionalmente precargado con items.
func NewInventoryItemRepository(items ...*entity.InventoryItem) *InventoryItemRepo {
	r := &InventoryItemRepo{
		byID: make(map[string]*entity.InventoryItem, len(items)),
		now:  time.Now,
	}
	for _, it := range items {
		r.order = append(r.order, it.ID)
		r.byID[it.ID] = it.Clone()
	}
	return r
}

// List devuelve copias en orden de inserción; warehouse vacío = todas.
func (r *InventoryItemRepo) List(_ context.Context, warehouse entity.WarehouseName) ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.InventoryItem, 0, len(r.order))
	for _, id := range r.order {
		it := r.byID[id]
		if warehouse != "" && it.Warehouse != warehouse {
			continue
		}
		list = append(list, it.Clone())
	}
	return list, nil
}

// GetByID devuelve una copia del ítem o ErrNotFound.
func (r *InventoryItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
	}
	return it.Clone(), nil
}

// GetForUpdate en memoria equivale a GetByID; la serialización la da TxRunner.
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

// Create agrega el ítem al final. El ID lo asigna el llamador.
func (r *InventoryItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[item.ID]; exists {
		return fmt.Errorf("%w: id %s ya existe", domain.ErrValidation, item.ID)
	}
	r.order = append(r.order, item.ID)
	r.byID[item.ID] = item.Clone()
	return nil
}

// Update mezcla los campos presentes y actualiza updated_at.
func (r *InventoryItemRepo) Update(_ context.Context, id string, fields repository.ItemUpdate) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
	}
	if fields.Name != nil {
		it.Name = *fields.Name
	}
	if fields.SKU != nil {
		it.SKU = *fields.SKU
	}
	if fields.MinStock != nil {
		it.MinStock = entity.IntPtr(*fields.MinStock)
	}
	it.UpdatedAt = r.now()
	return it.Clone(), nil
}

// SetQuantity reemplaza la cantidad. El llamador ya la recortó a >= 0.
func (r *InventoryItemRepo) SetQuantity(_ context.Context, id string, quantity int) (*entity.InventoryItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: cantidad negativa %d", domain.ErrValidation, quantity)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
	}
	it.Quantity = quantity
	it.UpdatedAt = r.now()
	return it.Clone(), nil
}

// Delete elimina el ítem. Un segundo Delete del mismo ID devuelve ErrNotFound.
func (r *InventoryItemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

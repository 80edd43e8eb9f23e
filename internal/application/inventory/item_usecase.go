package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/validation"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
	"github.com/jhoicas/magazzino-api/pkg/logger"
)

// ItemUseCase casos de uso del almacén de inventario: listar, crear, editar y eliminar ítems.
// El control de rol se hace aquí, no en el repositorio.
type ItemUseCase struct {
	itemRepo  repository.InventoryItemRepository
	validator *validation.Validator
	log       *logger.Logger
	now       func() time.Time
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.InventoryItemRepository, v *validation.Validator, log *logger.Logger) *ItemUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ItemUseCase{
		itemRepo:  itemRepo,
		validator: v,
		log:       log.Component("items"),
		now:       time.Now,
	}
}

// List devuelve los ítems, opcionalmente filtrados por bodega. Una bodega desconocida es ErrValidation.
func (uc *ItemUseCase) List(ctx context.Context, warehouse string) (*dto.ItemListResponse, error) {
	wh := entity.WarehouseName(strings.TrimSpace(warehouse))
	if wh != "" && !wh.Valid() {
		return nil, fmt.Errorf("%w: bodega desconocida %q", domain.ErrValidation, warehouse)
	}
	items, err := uc.itemRepo.List(ctx, wh)
	if err != nil {
		return nil, storeErr(err)
	}
	out := toItemResponses(items)
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

// Get devuelve un ítem por ID.
func (uc *ItemUseCase) Get(ctx context.Context, id string) (*dto.ItemResponse, error) {
	it, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	resp := ToItemResponse(it)
	return &resp, nil
}

// Create da de alta un ítem. Cantidad por defecto 0 y min_stock por defecto 10.
func (uc *ItemUseCase) Create(ctx context.Context, user *entity.AuthUser, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !user.CanMutate() {
		return nil, domain.ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	in.Category = strings.TrimSpace(in.Category)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	qty := 0
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	minStock := entity.DefaultCreateMinStock
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SKU:       in.SKU,
		Quantity:  qty,
		Category:  in.Category,
		Warehouse: entity.WarehouseName(in.Warehouse),
		MinStock:  entity.IntPtr(minStock),
		UpdatedAt: uc.now(),
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, storeErr(err)
	}
	uc.log.Info().
		Str("item_id", item.ID).
		Str("sku", item.SKU).
		Str("warehouse", item.Warehouse.String()).
		Str("user_id", user.ID).
		Msg("ítem creado")
	resp := ToItemResponse(item)
	return &resp, nil
}

// Update fusiona name, sku y min_stock en el ítem existente.
func (uc *ItemUseCase) Update(ctx context.Context, user *entity.AuthUser, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if !user.CanMutate() {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		in.Name = &v
	}
	if in.SKU != nil {
		v := strings.TrimSpace(*in.SKU)
		in.SKU = &v
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	updated, err := uc.itemRepo.Update(ctx, id, repository.ItemUpdate{
		Name:     in.Name,
		SKU:      in.SKU,
		MinStock: in.MinStock,
	})
	if err != nil {
		return nil, storeErr(err)
	}
	uc.log.Info().Str("item_id", id).Str("user_id", user.ID).Msg("ítem actualizado")
	resp := ToItemResponse(updated)
	return &resp, nil
}

// Delete elimina un ítem. Un segundo borrado del mismo ID devuelve ErrNotFound.
func (uc *ItemUseCase) Delete(ctx context.Context, user *entity.AuthUser, id string) error {
	if !user.CanMutate() {
		return domain.ErrForbidden
	}
	if err := uc.itemRepo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	uc.log.Info().Str("item_id", id).Str("user_id", user.ID).Msg("ítem eliminado")
	return nil
}

// Warehouses resume cada bodega de la enumeración con su número de ítems y faltantes.
func (uc *ItemUseCase) Warehouses(ctx context.Context) ([]dto.WarehouseResponse, error) {
	items, err := uc.itemRepo.List(ctx, "")
	if err != nil {
		return nil, storeErr(err)
	}
	counts := make(map[entity.WarehouseName]*dto.WarehouseResponse)
	out := make([]dto.WarehouseResponse, 0, len(entity.Warehouses()))
	for _, w := range entity.Warehouses() {
		out = append(out, dto.WarehouseResponse{Name: w.String()})
	}
	for i := range out {
		counts[entity.WarehouseName(out[i].Name)] = &out[i]
	}
	for _, it := range items {
		c, ok := counts[it.Warehouse]
		if !ok {
			continue
		}
		c.ItemCount++
		if it.BelowThreshold() {
			c.ShortageCount++
		}
	}
	return out, nil
}

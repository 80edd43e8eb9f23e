package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/application/validation"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/memory"
)

func newItemUseCase(items ...*entity.InventoryItem) (*inventory.ItemUseCase, *memory.InventoryItemRepo) {
	repo := memory.NewInventoryItemRepository(items...)
	return inventory.NewItemUseCase(repo, validation.New(), nil), repo
}

func TestItemCreate_Defaults(t *testing.T) {
	uc, _ := newItemUseCase()

	got, err := uc.Create(context.Background(), operator, dto.CreateItemRequest{
		Name:      "  Trapano  ",
		SKU:       "DRL-001",
		Warehouse: "Principale",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Trapano", got.Name)
	assert.Equal(t, 0, got.Quantity)
	require.NotNil(t, got.MinStock)
	assert.Equal(t, 10, *got.MinStock)
	assert.True(t, got.BelowMinimum)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestItemCreate_MinStockCeroSeConserva(t *testing.T) {
	uc, _ := newItemUseCase()
	zero := 0

	got, err := uc.Create(context.Background(), admin, dto.CreateItemRequest{
		Name: "Cavo", SKU: "CAB-1", Warehouse: "Marco", MinStock: &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, *got.MinStock)
	assert.False(t, got.BelowMinimum)
}

func TestItemCreate_Validacion(t *testing.T) {
	uc, repo := newItemUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, admin, dto.CreateItemRequest{Name: "   ", SKU: "X", Warehouse: "Marco"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Create(ctx, admin, dto.CreateItemRequest{Name: "X", SKU: "", Warehouse: "Marco"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Create(ctx, admin, dto.CreateItemRequest{Name: "X", SKU: "X", Warehouse: "Roma"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	all, _ := repo.List(ctx, "")
	assert.Empty(t, all)
}

func TestItemCreate_ViewerRechazado(t *testing.T) {
	uc, _ := newItemUseCase()
	_, err := uc.Create(context.Background(), viewer, dto.CreateItemRequest{Name: "X", SKU: "X", Warehouse: "Marco"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestItemUpdate(t *testing.T) {
	uc, _ := newItemUseCase(item("a", "A", entity.WarehouseMarco, 5, nil))
	ctx := context.Background()
	name := "Nuovo nome"
	minStock := 3

	got, err := uc.Update(ctx, operator, "a", dto.UpdateItemRequest{Name: &name, MinStock: &minStock})
	require.NoError(t, err)
	assert.Equal(t, "Nuovo nome", got.Name)
	assert.Equal(t, "A", got.SKU)
	assert.Equal(t, 3, *got.MinStock)
	assert.Equal(t, 5, got.Quantity)

	_, err = uc.Update(ctx, operator, "zzz", dto.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, viewer, "a", dto.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestItemDelete_Inexistente(t *testing.T) {
	uc, repo := newItemUseCase(item("a", "A", entity.WarehouseMarco, 5, nil))
	ctx := context.Background()

	err := uc.Delete(ctx, admin, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	all, _ := repo.List(ctx, "")
	assert.Len(t, all, 1)

	require.NoError(t, uc.Delete(ctx, admin, "a"))
	assert.ErrorIs(t, uc.Delete(ctx, admin, "a"), domain.ErrNotFound, "el segundo borrado falla")
}

func TestItemList_FiltroBodega(t *testing.T) {
	uc, _ := newItemUseCase(
		item("a", "A", entity.WarehouseMarco, 5, nil),
		item("b", "B", entity.WarehouseMirko, 5, nil),
	)
	ctx := context.Background()

	got, err := uc.List(ctx, "Mirko")
	require.NoError(t, err)
	require.Equal(t, 1, got.Total)
	assert.Equal(t, "b", got.Items[0].ID)

	_, err = uc.List(ctx, "Atlantide")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWarehouses_Resumen(t *testing.T) {
	uc, _ := newItemUseCase(memory.DemoInventory(fixedNow)...)

	got, err := uc.Warehouses(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, "Principale", got[0].Name)
	for _, w := range got {
		assert.Equal(t, 4, w.ItemCount)
		assert.Equal(t, 2, w.ShortageCount, "SAF-012 y OIL-442 están bajo mínimo")
	}
}

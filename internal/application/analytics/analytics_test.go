package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magazzino-api/internal/application/analytics"
	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/memory"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type brokenOrders struct{ *memory.PurchaseOrderRepo }

func (brokenOrders) ListAll(context.Context) ([]*entity.PurchaseOrder, error) {
	return nil, errors.New("db caída")
}

type stubLLM struct {
	out []dto.InsightDTO
	err error
	got []dto.InsightItemDTO
}

func (s *stubLLM) SuggestInventoryInsights(_ context.Context, items []dto.InsightItemDTO) ([]dto.InsightDTO, error) {
	s.got = items
	return s.out, s.err
}

func TestDashboard_Summary(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		memory.NewInventoryItemRepository(memory.DemoInventory(now)...),
		memory.NewPurchaseOrderRepository(memory.DemoPurchaseOrders(now)...),
	)

	got, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 24, got.TotalSKUs)
	assert.Equal(t, 6*(45+12+120+8), got.TotalUnits)
	assert.Equal(t, 12, got.ShortageCount)
	assert.Len(t, got.Shortages, 12)
	assert.Equal(t, "50", got.StockHealthPct.String())
	require.Len(t, got.Warehouses, 6)
	assert.Equal(t, 2, got.Warehouses[0].ShortageCount)
	assert.Equal(t, 1, got.OrdersCount)
	require.NotNil(t, got.LastOrder)
}

// healthItems almacén de ítems que además agrega la salud por bodega.
type healthItems struct {
	*memory.InventoryItemRepo
	health map[entity.WarehouseName]decimal.Decimal
	err    error
}

func (h healthItems) WarehouseHealth(context.Context) (map[entity.WarehouseName]decimal.Decimal, error) {
	return h.health, h.err
}

func TestDashboard_SaludAgregadaPorAlmacen(t *testing.T) {
	items := healthItems{
		InventoryItemRepo: memory.NewInventoryItemRepository(memory.DemoInventory(now)...),
		health:            map[entity.WarehouseName]decimal.Decimal{entity.WarehouseNicola: decimal.RequireFromString("33.33")},
	}
	uc := analytics.NewDashboardUseCase(items, memory.NewPurchaseOrderRepository())

	got, err := uc.Summary(context.Background())
	require.NoError(t, err)
	for _, w := range got.Warehouses {
		switch w.Name {
		case entity.WarehouseNicola.String():
			assert.Equal(t, "33.33", w.StockHealthPct.String())
		default:
			assert.Equal(t, "50", w.StockHealthPct.String(), w.Name)
		}
	}

	items.err = errors.New("db caída")
	_, err = analytics.NewDashboardUseCase(items, memory.NewPurchaseOrderRepository()).Summary(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestDashboard_FallaHistoria(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewInventoryItemRepository(), brokenOrders{})
	_, err := uc.Summary(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestInsights_FallaDevuelveVacio(t *testing.T) {
	items := memory.NewInventoryItemRepository(&entity.InventoryItem{ID: "a", Name: "Olio", SKU: "OIL-442", Quantity: 8})
	llm := &stubLLM{err: errors.New("timeout")}

	got := analytics.NewInsightsUseCase(items, llm, nil).Suggest(context.Background(), "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.Len(t, llm.got, 1)
	assert.Nil(t, llm.got[0].MinStock)
}

func TestInsights_SinAsesor(t *testing.T) {
	got := analytics.NewInsightsUseCase(memory.NewInventoryItemRepository(), nil, nil).Suggest(context.Background(), "")
	assert.Empty(t, got)
}

func TestInsights_Respuesta(t *testing.T) {
	llm := &stubLLM{out: []dto.InsightDTO{{Title: "Scorte", Description: "Riordina"}}}
	got := analytics.NewInsightsUseCase(memory.NewInventoryItemRepository(), llm, nil).Suggest(context.Background(), "")
	require.Len(t, got, 1)
	assert.Equal(t, "Scorte", got[0].Title)
}

func TestInsights_VistaPorBodega(t *testing.T) {
	items := memory.NewInventoryItemRepository(
		&entity.InventoryItem{ID: "a", Name: "Olio", SKU: "OIL-442", Quantity: 8, Warehouse: entity.WarehouseMarco},
		&entity.InventoryItem{ID: "b", Name: "Cavo", SKU: "CAB-993", Quantity: 100, Warehouse: entity.WarehouseNicola},
	)
	llm := &stubLLM{}

	analytics.NewInsightsUseCase(items, llm, nil).Suggest(context.Background(), entity.WarehouseNicola)
	require.Len(t, llm.got, 1)
	assert.Equal(t, "CAB-993", llm.got[0].SKU)

	analytics.NewInsightsUseCase(items, llm, nil).Suggest(context.Background(), "")
	assert.Len(t, llm.got, 2)
}

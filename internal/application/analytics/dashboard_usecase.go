// Package analytics agrupa los casos de uso de lectura agregada: tablero e insights.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	domaininv "github.com/jhoicas/magazzino-api/internal/domain/inventory"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

// DashboardUseCase calcula los KPIs del tablero.
type DashboardUseCase struct {
	itemRepo  repository.InventoryItemRepository
	orderRepo repository.PurchaseOrderRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(itemRepo repository.InventoryItemRepository, orderRepo repository.PurchaseOrderRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, orderRepo: orderRepo}
}

// Summary lee inventario e historia en paralelo y arma el resumen.
// Si el almacén agrega la salud por bodega (Postgres), ese valor reemplaza al calculado en memoria.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		items  []*entity.InventoryItem
		orders []*entity.PurchaseOrder
		health map[entity.WarehouseName]decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.itemRepo.List(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = uc.orderRepo.ListAll(gctx)
		return err
	})
	if hr, ok := uc.itemRepo.(repository.StockHealthReader); ok {
		g.Go(func() error {
			var err error
			health, err = hr.WarehouseHealth(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	out := &dto.DashboardSummaryDTO{
		TotalSKUs:      len(items),
		StockHealthPct: domaininv.HealthPct(items),
		Warehouses:     make([]dto.WarehouseHealthDTO, 0, len(entity.Warehouses())),
		Shortages:      make([]dto.ItemResponse, 0),
		OrdersCount:    len(orders),
	}
	byWarehouse := make(map[entity.WarehouseName][]*entity.InventoryItem)
	for _, it := range items {
		out.TotalUnits += it.Quantity
		if it.BelowThreshold() {
			out.ShortageCount++
			out.Shortages = append(out.Shortages, inventory.ToItemResponse(it))
		}
		byWarehouse[it.Warehouse] = append(byWarehouse[it.Warehouse], it)
	}
	for _, w := range entity.Warehouses() {
		whItems := byWarehouse[w]
		h := dto.WarehouseHealthDTO{
			Name:           w.String(),
			ItemCount:      len(whItems),
			StockHealthPct: domaininv.HealthPct(whItems),
		}
		if pct, ok := health[w]; ok {
			h.StockHealthPct = pct
		}
		for _, it := range whItems {
			h.TotalUnits += it.Quantity
			if it.BelowThreshold() {
				h.ShortageCount++
			}
		}
		out.Warehouses = append(out.Warehouses, h)
	}
	if len(orders) > 0 {
		last := inventory.ToPurchaseOrderDTO(orders[0])
		out.LastOrder = &last
	}
	return out, nil
}

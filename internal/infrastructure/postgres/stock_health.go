package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

var _ repository.StockHealthReader = (*InventoryItemRepo)(nil)

// warehouseHealthQuery agrega en NUMERIC; el codec de pgx-shopspring-decimal lo escanea a decimal.Decimal.
const warehouseHealthQuery = `
	SELECT warehouse,
	       ROUND(100.0 * COUNT(*) FILTER (WHERE quantity >= COALESCE(min_stock, $1)) / COUNT(*), 2)::numeric(5,2)
	FROM inventory_items
	GROUP BY warehouse`

// WarehouseHealth calcula la salud de existencias por bodega sin traer los ítems.
func (r *InventoryItemRepo) WarehouseHealth(ctx context.Context) (map[entity.WarehouseName]decimal.Decimal, error) {
	rows, err := r.q.Query(ctx, warehouseHealthQuery, entity.FallbackMinStock)
	if err != nil {
		return nil, fmt.Errorf("warehouse health: %w", err)
	}
	defer rows.Close()

	out := make(map[entity.WarehouseName]decimal.Decimal)
	for rows.Next() {
		var (
			warehouse string
			pct       decimal.Decimal
		)
		if err := rows.Scan(&warehouse, &pct); err != nil {
			return nil, fmt.Errorf("scan warehouse health: %w", err)
		}
		out[entity.WarehouseName(warehouse)] = pct
	}
	return out, rows.Err()
}

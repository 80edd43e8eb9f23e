package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo diario de movimientos sobre PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, item_id, sku, warehouse, target_warehouse, direction,
			qty, quantity_before, quantity_after, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ItemID, m.SKU, string(m.Warehouse), string(m.TargetWarehouse), m.Direction,
		m.Qty, m.QuantityBefore, m.QuantityAfter, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, item_id, sku, warehouse, target_warehouse, direction,
			qty, quantity_before, quantity_after, user_id, created_at
		FROM stock_movements
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var (
			m               entity.StockMovement
			warehouse       string
			targetWarehouse string
		)
		if err := rows.Scan(
			&m.ID, &m.ItemID, &m.SKU, &warehouse, &targetWarehouse, &m.Direction,
			&m.Qty, &m.QuantityBefore, &m.QuantityAfter, &m.UserID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Warehouse = entity.WarehouseName(warehouse)
		m.TargetWarehouse = entity.WarehouseName(targetWarehouse)
		list = append(list, &m)
	}
	return list, rows.Err()
}

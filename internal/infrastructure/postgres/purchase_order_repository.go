package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo historia de órdenes; las líneas se guardan como JSONB ordenado.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// orderLineJSON forma persistida de cada línea.
type orderLineJSON struct {
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Qty       int    `json:"qty"`
	Warehouse string `json:"warehouse"`
}

// Append inserta la orden. "Más reciente primero" se resuelve al leer (ORDER BY seq DESC).
func (r *PurchaseOrderRepo) Append(ctx context.Context, order *entity.PurchaseOrder) error {
	lines := make([]orderLineJSON, 0, len(order.Items))
	for _, l := range order.Items {
		lines = append(lines, orderLineJSON{Name: l.Name, SKU: l.SKU, Qty: l.Qty, Warehouse: string(l.Warehouse)})
	}
	items, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal order lines: %w", err)
	}
	query := `
		INSERT INTO purchase_orders (id, items_count, created_at, status, items)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, order.ID, order.ItemsCount, order.CreatedAt, order.Status, items); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("orden %s duplicada: %w", order.ID, err)
		}
		return fmt.Errorf("append order: %w", err)
	}
	return nil
}

// ListAll devuelve la historia completa, más reciente primero.
func (r *PurchaseOrderRepo) ListAll(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, items_count, created_at, status, items
		FROM purchase_orders ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// GetByID devuelve una orden o ErrNotFound.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `
		SELECT id, items_count, created_at, status, items
		FROM purchase_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var (
		o   entity.PurchaseOrder
		raw []byte
	)
	if err := row.Scan(&o.ID, &o.ItemsCount, &o.CreatedAt, &o.Status, &raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	var lines []orderLineJSON
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal order lines %s: %w", o.ID, err)
	}
	o.Items = make([]entity.PurchaseOrderLine, 0, len(lines))
	for _, l := range lines {
		o.Items = append(o.Items, entity.PurchaseOrderLine{
			Name: l.Name, SKU: l.SKU, Qty: l.Qty, Warehouse: entity.WarehouseName(l.Warehouse),
		})
	}
	return &o, nil
}

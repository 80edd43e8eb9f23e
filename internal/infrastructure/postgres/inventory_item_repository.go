package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación de InventoryItemRepository sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemColumns = `id, name, sku, quantity, category, warehouse, min_stock, updated_at`

// List devuelve los ítems en orden de inserción; warehouse vacío = todas las bodegas.
func (r *InventoryItemRepo) List(ctx context.Context, warehouse entity.WarehouseName) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items
		WHERE ($1 = '' OR warehouse = $1)
		ORDER BY seq`
	rows, err := r.q.Query(ctx, query, string(warehouse))
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// GetByID obtiene un ítem o ErrNotFound.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id)
}

// GetForUpdate obtiene el ítem y bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
}

func (r *InventoryItemRepo) get(ctx context.Context, query, id string) (*entity.InventoryItem, error) {
	it, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Create inserta el ítem. El ID lo asigna el llamador.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, sku, quantity, category, warehouse, min_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.SKU, item.Quantity, item.Category,
		string(item.Warehouse), item.MinStock, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: id %s ya existe", domain.ErrValidation, item.ID)
		}
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// Update mezcla name, sku y min_stock (COALESCE mantiene los no enviados) y actualiza updated_at.
func (r *InventoryItemRepo) Update(ctx context.Context, id string, fields repository.ItemUpdate) (*entity.InventoryItem, error) {
	query := `
		UPDATE inventory_items SET
			name = COALESCE($2, name),
			sku = COALESCE($3, sku),
			min_stock = COALESCE($4, min_stock),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + itemColumns
	it, err := scanItem(r.q.QueryRow(ctx, query, id, fields.Name, fields.SKU, fields.MinStock))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

// SetQuantity reemplaza la cantidad. El CHECK de la tabla rechaza negativos.
func (r *InventoryItemRepo) SetQuantity(ctx context.Context, id string, quantity int) (*entity.InventoryItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: cantidad negativa %d", domain.ErrValidation, quantity)
	}
	query := `
		UPDATE inventory_items SET quantity = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + itemColumns
	it, err := scanItem(r.q.QueryRow(ctx, query, id, quantity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("set quantity: %w", err)
	}
	return it, nil
}

// Delete elimina el ítem o devuelve ErrNotFound.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var (
		it        entity.InventoryItem
		warehouse string
	)
	if err := row.Scan(
		&it.ID, &it.Name, &it.SKU, &it.Quantity, &it.Category,
		&warehouse, &it.MinStock, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}
	it.Warehouse = entity.WarehouseName(warehouse)
	return &it, nil
}

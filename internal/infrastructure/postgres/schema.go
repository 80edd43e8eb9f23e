package postgres

import (
	"context"
	"fmt"
)

// schemaStatements DDL idempotente. seq conserva el orden de inserción que exige List.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS inventory_items (
		seq        BIGSERIAL UNIQUE,
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		sku        TEXT NOT NULL,
		quantity   INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		category   TEXT NOT NULL DEFAULT '',
		warehouse  TEXT NOT NULL,
		min_stock  INTEGER CHECK (min_stock IS NULL OR min_stock >= 0),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_items_sku ON inventory_items (lower(sku))`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_items_warehouse ON inventory_items (warehouse)`,
	`CREATE TABLE IF NOT EXISTS purchase_orders (
		seq         BIGSERIAL UNIQUE,
		id          TEXT PRIMARY KEY,
		items_count INTEGER NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		status      TEXT NOT NULL,
		items       JSONB NOT NULL DEFAULT '[]'::jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id               TEXT PRIMARY KEY,
		item_id          TEXT NOT NULL,
		sku              TEXT NOT NULL,
		warehouse        TEXT NOT NULL,
		target_warehouse TEXT NOT NULL,
		direction        TEXT NOT NULL CHECK (direction IN ('load', 'unload')),
		qty              INTEGER NOT NULL,
		quantity_before  INTEGER NOT NULL,
		quantity_after   INTEGER NOT NULL,
		user_id          TEXT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_created ON stock_movements (created_at DESC)`,
}

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

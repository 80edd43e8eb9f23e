package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/memory"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/postgres"
	"github.com/jhoicas/magazzino-api/pkg/config"
	"github.com/jhoicas/magazzino-api/pkg/logger"
)

// stores repositorios del backend elegido (PostgreSQL o memoria) detrás de los mismos puertos.
type stores struct {
	backend   string
	items     repository.InventoryItemRepository
	orders    repository.PurchaseOrderRepository
	movements repository.StockMovementRepository
	tx        inventory.TxRunner
	close     func()
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("backend PostgreSQL")
		return &stores{
			backend:   "postgres",
			items:     postgres.NewInventoryItemRepository(pool),
			orders:    postgres.NewPurchaseOrderRepository(pool),
			movements: postgres.NewStockMovementRepository(pool),
			tx:        postgres.NewTxRunner(pool),
			close:     pool.Close,
		}, nil
	}

	var (
		items  = memory.NewInventoryItemRepository()
		orders = memory.NewPurchaseOrderRepository()
	)
	if cfg.App.SeedDemo {
		now := time.Now().UTC()
		items = memory.NewInventoryItemRepository(memory.DemoInventory(now)...)
		orders = memory.NewPurchaseOrderRepository(memory.DemoPurchaseOrders(now)...)
	}
	movements := memory.NewStockMovementRepository()
	log.Warn().Bool("seed_demo", cfg.App.SeedDemo).Msg("sin DATABASE_URL ni DB_HOST: backend en memoria, los datos no sobreviven al reinicio")
	return &stores{
		backend:   "memory",
		items:     items,
		orders:    orders,
		movements: movements,
		tx:        memory.NewTxRunner(items, movements),
		close:     func() {},
	}, nil
}

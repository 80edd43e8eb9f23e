// seed crea el esquema PostgreSQL y carga el inventario de demostración
// (cuatro productos replicados en cada bodega) más una orden de compra inicial.
//
// Uso: go run ./cmd/seed [--force]
// Sin --force no hace nada si inventory_items ya tiene filas.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/magazzino-api/internal/infrastructure/memory"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/postgres"
	"github.com/jhoicas/magazzino-api/pkg/config"
)

func main() {
	force := len(os.Args) > 1 && os.Args[1] == "--force"

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.DB.Enabled() {
		fmt.Fprintln(os.Stderr, "DATABASE_URL o DB_HOST requerido: el backend en memoria se siembra solo al arrancar")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Crear esquema: %v\n", err)
		os.Exit(1)
	}

	items := postgres.NewInventoryItemRepository(pool)
	existing, err := items.List(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer inventario: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 && !force {
		fmt.Printf("inventory_items ya tiene %d filas; nada que hacer (usar --force para sembrar de todos modos)\n", len(existing))
		return
	}

	now := time.Now().UTC()
	demo := memory.DemoInventory(now)
	for _, it := range demo {
		if err := items.Create(ctx, it); err != nil {
			fmt.Fprintf(os.Stderr, "Insertar %s (%s): %v\n", it.SKU, it.Warehouse, err)
			os.Exit(1)
		}
	}

	orders := postgres.NewPurchaseOrderRepository(pool)
	seeded := 0
	for _, o := range memory.DemoPurchaseOrders(now) {
		if _, err := orders.GetByID(ctx, o.ID); err == nil {
			continue
		}
		if err := orders.Append(ctx, o); err != nil {
			fmt.Fprintf(os.Stderr, "Insertar orden %s: %v\n", o.ID, err)
			os.Exit(1)
		}
		seeded++
	}

	fmt.Printf("Sembrados %d ítems y %d órdenes de compra\n", len(demo), seeded)
}

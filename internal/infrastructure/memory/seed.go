package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

type demoProduct struct {
	name     string
	sku      string
	quantity int
	category string
	minStock int
}

var demoCatalog = []demoProduct{
	{"Trapano Industriale X200", "DRL-001", 45, "Attrezzatura", 10},
	{"Casco di Sicurezza L-Class", "SAF-012", 12, "Sicurezza", 15},
	{"Cavo Rame 50m", "CAB-993", 120, "Elettrico", 50},
	{"Liquido Idraulico 5L", "OIL-442", 8, "Manutenzione", 10},
}

// DemoInventory genera el catálogo de demostración replicado en cada bodega.
func DemoInventory(now time.Time) []*entity.InventoryItem {
	items := make([]*entity.InventoryItem, 0, len(demoCatalog)*len(entity.Warehouses()))
	for _, w := range entity.Warehouses() {
		for _, p := range demoCatalog {
			items = append(items, &entity.InventoryItem{
				ID:        uuid.New().String(),
				Name:      p.name,
				SKU:       p.sku,
				Quantity:  p.quantity,
				Category:  p.category,
				Warehouse: w,
				MinStock:  entity.IntPtr(p.minStock),
				UpdatedAt: now,
			})
		}
	}
	return items
}

// DemoPurchaseOrders historia inicial de demostración.
func DemoPurchaseOrders(now time.Time) []*entity.PurchaseOrder {
	return []*entity.PurchaseOrder{
		{
			ID:         "PO-" + now.AddDate(0, 0, -1).Format("2006") + "-001",
			ItemsCount: 2,
			CreatedAt:  now.Add(-24 * time.Hour),
			Status:     entity.PurchaseOrderSent,
			Items: []entity.PurchaseOrderLine{
				{Name: "Cavo Rame 50m", SKU: "CAB-993", Qty: 10, Warehouse: entity.WarehousePrincipale},
				{Name: "Liquido Idraulico 5L", SKU: "OIL-442", Qty: 5, Warehouse: entity.WarehouseNicola},
			},
		},
	}
}

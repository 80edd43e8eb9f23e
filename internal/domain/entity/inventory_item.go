package entity

import "time"

// Umbrales por defecto de existencias mínimas.
const (
	// FallbackMinStock se usa al evaluar reposición cuando el ítem no tiene min_stock.
	FallbackMinStock = 15
	// DefaultCreateMinStock se asigna al crear un ítem sin min_stock.
	DefaultCreateMinStock = 10
)

// InventoryItem representa las existencias de un SKU en una bodega.
// Quantity nunca es negativa; los deltas que la llevarían bajo cero se recortan a 0.
type InventoryItem struct {
	ID        string
	Name      string
	SKU       string // único por bodega, búsqueda sin distinguir mayúsculas
	Quantity  int
	Category  string
	Warehouse WarehouseName
	MinStock  *int // nil = sin umbral propio
	UpdatedAt time.Time
}

// Threshold devuelve el umbral efectivo: MinStock si existe, si no FallbackMinStock.
func (i *InventoryItem) Threshold() int {
	if i.MinStock == nil {
		return FallbackMinStock
	}
	return *i.MinStock
}

// BelowThreshold indica si el ítem está bajo su existencia mínima.
func (i *InventoryItem) BelowThreshold() bool {
	return i.Quantity < i.Threshold()
}

// Clone devuelve una copia profunda (MinStock incluido) para no compartir punteros con el almacén.
func (i *InventoryItem) Clone() *InventoryItem {
	if i == nil {
		return nil
	}
	c := *i
	if i.MinStock != nil {
		v := *i.MinStock
		c.MinStock = &v
	}
	return &c
}

// IntPtr es un atajo para construir MinStock.
func IntPtr(v int) *int { return &v }

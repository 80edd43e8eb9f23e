package entity

import "time"

// Direcciones de movimiento.
const (
	MovementLoad   = "load"
	MovementUnload = "unload"
)

// StockMovement registro de un movimiento aplicado (carga o descarga).
// TargetWarehouse es la bodega elegida por el operador; el registro mutado es siempre el del ítem resuelto.
type StockMovement struct {
	ID              string
	ItemID          string
	SKU             string
	Warehouse       WarehouseName
	TargetWarehouse WarehouseName
	Direction       string
	Qty             int
	QuantityBefore  int
	QuantityAfter   int
	UserID          string
	CreatedAt       time.Time
}

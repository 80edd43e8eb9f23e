package dto

import "time"

// ResolveSKURequest body de POST /api/movements/resolve.
type ResolveSKURequest struct {
	SKU string `json:"sku" validate:"required,max=100"`
}

// SetTargetRequest body de PUT /api/movements/target.
type SetTargetRequest struct {
	Warehouse string `json:"warehouse" validate:"required,warehouse"`
}

// SetQtyRequest body de PUT /api/movements/qty.
type SetQtyRequest struct {
	Qty int `json:"qty"`
}

// ApplyMovementRequest body de POST /api/movements/apply.
type ApplyMovementRequest struct {
	Direction string `json:"direction" validate:"required,oneof=load unload"`
}

// MovementStateDTO estado del conciliador de movimientos del operador.
type MovementStateDTO struct {
	State           string        `json:"state"` // idle | scanning | resolved | applying
	Item            *ItemResponse `json:"item,omitempty"`
	TargetWarehouse string        `json:"target_warehouse,omitempty"`
	Qty             int           `json:"qty"`
}

// StockMovementDTO registro del diario de movimientos.
type StockMovementDTO struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	SKU             string    `json:"sku"`
	Warehouse       string    `json:"warehouse"`
	TargetWarehouse string    `json:"target_warehouse"`
	Direction       string    `json:"direction"`
	Qty             int       `json:"qty"`
	QuantityBefore  int       `json:"quantity_before"`
	QuantityAfter   int       `json:"quantity_after"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// ScanRequest body de POST /api/movements/scan: texto crudo emitido por el lector.
type ScanRequest struct {
	Code string `json:"code" validate:"required,max=200"`
}

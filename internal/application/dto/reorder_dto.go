package dto

import "time"

// ReorderLineDTO línea de la propuesta de reposición.
type ReorderLineDTO struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	SKU        string `json:"sku"`
	Warehouse  string `json:"warehouse"`
	ReorderQty int    `json:"reorder_qty"`
}

// ReorderStateDTO estado de la sesión de reposición del operador.
type ReorderStateDTO struct {
	View  string           `json:"view"`  // proposal | history
	Phase string           `json:"phase"` // editing | reviewing | committing
	Lines []ReorderLineDTO `json:"lines"`
	Total int              `json:"total"`
}

// AdjustQtyRequest body de POST /api/reorder/lines/:id/adjust.
type AdjustQtyRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// SwitchViewRequest body de POST /api/reorder/view.
type SwitchViewRequest struct {
	View string `json:"view" validate:"required,oneof=proposal history"`
}

// PurchaseOrderLineDTO línea de una orden confirmada.
type PurchaseOrderLineDTO struct {
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Qty       int    `json:"qty"`
	Warehouse string `json:"warehouse"`
}

// PurchaseOrderDTO orden de compra inmutable.
type PurchaseOrderDTO struct {
	ID         string                 `json:"id"`
	ItemsCount int                    `json:"items_count"`
	CreatedAt  time.Time              `json:"created_at"`
	Status     string                 `json:"status"`
	Items      []PurchaseOrderLineDTO `json:"items"`
}

// PurchaseOrderListResponse historia de órdenes, más reciente primero.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderDTO `json:"items"`
	Total int                `json:"total"`
}

// OrderDocumentLine fila plana exportable: Product;SKU;Warehouse;Quantity.
type OrderDocumentLine struct {
	Product   string
	SKU       string
	Warehouse string
	Quantity  int
}

// OrderDocument documento exportable: una orden confirmada o la propuesta viva.
type OrderDocument struct {
	Reference string // ID de la orden o "PROPOSAL"
	CreatedAt time.Time
	Status    string
	Lines     []OrderDocumentLine
}

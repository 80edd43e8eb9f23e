package entity

import "time"

// Estados de una orden de compra. Sólo "sent" se asigna hoy.
const (
	PurchaseOrderSent       = "sent"
	PurchaseOrderProcessing = "processing"
)

// PurchaseOrderLine línea de una orden confirmada.
type PurchaseOrderLine struct {
	Name      string
	SKU       string
	Qty       int
	Warehouse WarehouseName
}

// PurchaseOrder es inmutable una vez creada; la historia sólo admite altas.
type PurchaseOrder struct {
	ID         string // PO-<año>-<3 dígitos>
	ItemsCount int
	CreatedAt  time.Time
	Status     string
	Items      []PurchaseOrderLine
}

// Clone copia la orden y sus líneas.
func (o *PurchaseOrder) Clone() *PurchaseOrder {
	if o == nil {
		return nil
	}
	c := *o
	c.Items = append([]PurchaseOrderLine(nil), o.Items...)
	return &c
}

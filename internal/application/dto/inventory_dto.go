package dto

import "time"

// CreateItemRequest entrada para crear un ítem de inventario.
// Quantity y MinStock son opcionales: se asumen 0 y 10 respectivamente.
type CreateItemRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	SKU       string `json:"sku" validate:"required,max=100"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=0"`
	Category  string `json:"category" validate:"max=100"`
	Warehouse string `json:"warehouse" validate:"required,warehouse"`
	MinStock  *int   `json:"min_stock" validate:"omitempty,min=0"`
}

// UpdateItemRequest edición de campos (name, sku, min_stock). La cantidad sólo cambia vía movimientos.
type UpdateItemRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	SKU      *string `json:"sku" validate:"omitempty,min=1,max=100"`
	MinStock *int    `json:"min_stock" validate:"omitempty,min=0"`
}

// ItemResponse salida de un ítem. MinStock es null si el ítem no tiene umbral propio.
type ItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Quantity     int       `json:"quantity"`
	Category     string    `json:"category"`
	Warehouse    string    `json:"warehouse"`
	MinStock     *int      `json:"min_stock"`
	BelowMinimum bool      `json:"below_minimum"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ItemListResponse listado de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// WarehouseResponse resumen por bodega.
type WarehouseResponse struct {
	Name          string `json:"name"`
	ItemCount     int    `json:"item_count"`
	ShortageCount int    `json:"shortage_count"`
}

package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
type DashboardSummaryDTO struct {
	TotalSKUs      int                  `json:"total_skus"`
	TotalUnits     int                  `json:"total_units"`
	ShortageCount  int                  `json:"shortage_count"`
	StockHealthPct decimal.Decimal      `json:"stock_health_pct"` // % de ítems en o sobre su mínimo
	Warehouses     []WarehouseHealthDTO `json:"warehouses"`
	Shortages      []ItemResponse       `json:"shortages"`
	OrdersCount    int                  `json:"orders_count"`
	LastOrder      *PurchaseOrderDTO    `json:"last_order,omitempty"`
}

// WarehouseHealthDTO KPIs de una bodega.
type WarehouseHealthDTO struct {
	Name           string          `json:"name"`
	ItemCount      int             `json:"item_count"`
	TotalUnits     int             `json:"total_units"`
	ShortageCount  int             `json:"shortage_count"`
	StockHealthPct decimal.Decimal `json:"stock_health_pct"`
}

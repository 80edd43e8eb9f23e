package entity

// ReorderLine propuesta transitoria de reposición; nunca se persiste.
// ItemID referencia el InventoryItem del que se derivó en el momento del cálculo.
type ReorderLine struct {
	ItemID     string
	Name       string
	SKU        string
	Warehouse  WarehouseName
	ReorderQty int // siempre >= 1
}

package entity

// WarehouseName identifica una de las ubicaciones físicas fijas.
type WarehouseName string

// Bodegas disponibles. El conjunto es cerrado: no se crean bodegas en tiempo de ejecución.
const (
	WarehousePrincipale WarehouseName = "Principale"
	WarehouseNicola     WarehouseName = "Nicola"
	WarehouseLeonardo   WarehouseName = "Leonardo"
	WarehouseLiborio    WarehouseName = "Liborio"
	WarehouseMarco      WarehouseName = "Marco"
	WarehouseMirko      WarehouseName = "Mirko"
)

// Warehouses devuelve las bodegas en orden de presentación.
func Warehouses() []WarehouseName {
	return []WarehouseName{
		WarehousePrincipale,
		WarehouseNicola,
		WarehouseLeonardo,
		WarehouseLiborio,
		WarehouseMarco,
		WarehouseMirko,
	}
}

// Valid indica si el nombre pertenece a la enumeración.
func (w WarehouseName) Valid() bool {
	for _, known := range Warehouses() {
		if w == known {
			return true
		}
	}
	return false
}

func (w WarehouseName) String() string { return string(w) }

package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

// Servicios de dominio puros sobre cantidades enteras de existencias.

// ReorderQty cantidad sugerida de reposición: max(1, umbral - cantidad).
func ReorderQty(item *entity.InventoryItem) int {
	return max(1, item.Threshold()-item.Quantity)
}

// AdjustReorderQty aplica un delta del operador sin bajar de 1. No hay tope superior.
func AdjustReorderQty(current, delta int) int {
	return max(1, current+delta)
}

// ApplyDelta suma un delta firmado a la cantidad y recorta en 0.
func ApplyDelta(quantity, delta int) int {
	return max(0, quantity+delta)
}

// MovementDelta convierte dirección y cantidad en delta firmado (load = +qty, unload = -qty).
// ok es false si la dirección no es válida.
func MovementDelta(direction string, qty int) (delta int, ok bool) {
	switch direction {
	case entity.MovementLoad:
		return qty, true
	case entity.MovementUnload:
		return -qty, true
	}
	return 0, false
}

// HealthPct porcentaje de ítems en o sobre su umbral (0-100, 2 decimales). Sin ítems = 100.
func HealthPct(items []*entity.InventoryItem) decimal.Decimal {
	if len(items) == 0 {
		return decimal.NewFromInt(100)
	}
	healthy := 0
	for _, it := range items {
		if !it.BelowThreshold() {
			healthy++
		}
	}
	return decimal.NewFromInt(int64(healthy)).
		Div(decimal.NewFromInt(int64(len(items)))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

// StockHealthReader lo implementan los almacenes que agregan la salud de existencias en el servidor.
// Devuelve, por bodega con ítems, el porcentaje (0-100, 2 decimales) de ítems en o sobre su umbral.
// Las bodegas sin ítems no aparecen en el mapa.
type StockHealthReader interface {
	WarehouseHealth(ctx context.Context) (map[entity.WarehouseName]decimal.Decimal, error)
}

package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/validation"
	"github.com/jhoicas/magazzino-api/internal/domain"
)

func TestStruct_BodegaDesconocida(t *testing.T) {
	v := validation.New()
	err := v.Struct(dto.CreateItemRequest{Name: "Cavo", SKU: "CAB-1", Warehouse: "Milano"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "warehouse")
}

func TestStruct_CantidadNegativa(t *testing.T) {
	v := validation.New()
	neg := -1
	err := v.Struct(dto.CreateItemRequest{Name: "Cavo", SKU: "CAB-1", Warehouse: "Marco", Quantity: &neg})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStruct_Valido(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Struct(dto.CreateItemRequest{Name: "Cavo", SKU: "CAB-1", Warehouse: "Marco"}))
	assert.NoError(t, v.Struct(dto.ApplyMovementRequest{Direction: "unload"}))
	assert.ErrorIs(t, v.Struct(dto.ApplyMovementRequest{Direction: "scarico"}), domain.ErrValidation)
}

// Package validation centraliza la validación de DTOs con go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

// Validator envuelve validator.Validate con las reglas propias registradas.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con la regla "warehouse" (pertenencia a la enumeración de bodegas).
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("warehouse", func(fl validator.FieldLevel) bool {
		return entity.WarehouseName(fl.Field().String()).Valid()
	})
	return &Validator{v: v}
}

// Struct valida s y traduce los errores a domain.ErrValidation con el detalle de campos.
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(parts, ", "))
}

package inventory

import (
	"errors"
	"fmt"

	"github.com/jhoicas/magazzino-api/internal/domain"
)

// storeErr conserva los errores de dominio del repositorio y envuelve el resto como ErrPersistence.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrPersistence} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
}

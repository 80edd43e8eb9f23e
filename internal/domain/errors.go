package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los componentes envuelven con fmt.Errorf("%w: ...") y los llamadores comparan con errors.Is.
var (
	ErrValidation       = errors.New("entrada inválida")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrForbidden        = errors.New("rol sin permisos para modificar")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrPersistence      = errors.New("no se pudo persistir")
	ErrApply            = errors.New("no se pudo aplicar el movimiento")
	ErrDevice           = errors.New("dispositivo de captura no disponible")
	ErrInvalidState     = errors.New("operación no permitida en el estado actual")
	ErrDuplicateRequest = errors.New("petición ya procesada")
)

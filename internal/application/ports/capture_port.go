package ports

import "context"

// CaptureDevice colaborador externo que lee códigos (cámara, lector de barras).
// Open adquiere el dispositivo; Close debe llamarse siempre al salir del estado de escaneo.
type CaptureDevice interface {
	Open(ctx context.Context) error
	// ReadCode bloquea hasta leer un SKU o hasta que ctx termine. "" = sin lectura.
	ReadCode(ctx context.Context) (string, error)
	Close() error
}

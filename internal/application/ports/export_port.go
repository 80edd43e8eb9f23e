package ports

import (
	"context"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
)

// OrderExporter convierte un documento de orden en un archivo descargable (CSV, PDF, XML).
type OrderExporter interface {
	Format() string
	ContentType() string
	Export(ctx context.Context, doc dto.OrderDocument) ([]byte, error)
}

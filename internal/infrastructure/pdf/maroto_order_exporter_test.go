package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/pdf"
)

func TestMarotoOrderExporter_GeneraPDF(t *testing.T) {
	x := pdf.NewMarotoOrderExporter("Magazzino Demo")
	out, err := x.Export(context.Background(), dto.OrderDocument{
		Reference: "PO-2026-123",
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Status:    "sent",
		Lines: []dto.OrderDocumentLine{
			{Product: "Liquido Idraulico 5L", SKU: "OIL-442", Warehouse: "Marco", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "pdf", x.Format())
	assert.Equal(t, "application/pdf", x.ContentType())
}

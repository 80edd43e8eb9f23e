package export_test

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/export"
)

var doc = dto.OrderDocument{
	Reference: "PO-2026-123",
	CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	Status:    "sent",
	Lines: []dto.OrderDocumentLine{
		{Product: "Trapano Avvitatore", SKU: "DRL-001", Warehouse: "Principale", Quantity: 2},
		{Product: "Cavo; Rame 50m", SKU: "CAB-993", Warehouse: "Nicola", Quantity: 5},
	},
}

func TestCSVExporter_CabeceraYEscape(t *testing.T) {
	out, err := export.NewCSVExporter().Export(context.Background(), doc)
	require.NoError(t, err)
	want := "Product;SKU;Warehouse;Quantity\n" +
		"Trapano Avvitatore;DRL-001;Principale;2\n" +
		"\"Cavo; Rame 50m\";CAB-993;Nicola;5\n"
	assert.Equal(t, want, string(out))
}

func TestCSVExporter_SoloCabecera(t *testing.T) {
	out, err := export.NewCSVExporter().Export(context.Background(), dto.OrderDocument{Reference: "PROPOSAL"})
	require.NoError(t, err)
	assert.Equal(t, "Product;SKU;Warehouse;Quantity\n", string(out))
}

func TestXMLExporter(t *testing.T) {
	out, err := export.NewXMLExporter().Export(context.Background(), doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))
	root := parsed.SelectElement("PurchaseOrder")
	require.NotNil(t, root)
	assert.Equal(t, "PO-2026-123", root.SelectAttrValue("id", ""))
	assert.Equal(t, "2026-03-14T10:00:00Z", root.SelectAttrValue("createdAt", ""))

	lines := root.FindElements("./Lines/Line")
	require.Len(t, lines, 2)
	assert.Equal(t, "Cavo; Rame 50m", lines[1].SelectElement("Product").Text())
	assert.Equal(t, "5", lines[1].SelectElement("Quantity").Text())
}

// Package pdf genera la representación imprimible de una orden de compra
// (o de la propuesta de reposición viva) con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Orden de compra        │  Referencia + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | SKU | Bodega | Cantidad                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Líneas / Unidades                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
)

var _ ports.OrderExporter = (*MarotoOrderExporter)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Exporter ──────────────────────────────────────────────────────────────────

// MarotoOrderExporter implementa ports.OrderExporter en formato PDF.
type MarotoOrderExporter struct {
	company string
}

// NewMarotoOrderExporter construye el exportador. company aparece como autor y en el encabezado.
func NewMarotoOrderExporter(company string) *MarotoOrderExporter {
	return &MarotoOrderExporter{company: company}
}

func (g *MarotoOrderExporter) Format() string      { return "pdf" }
func (g *MarotoOrderExporter) ContentType() string { return "application/pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *MarotoOrderExporter) Export(_ context.Context, doc dto.OrderDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de compra "+doc.Reference, true).
		WithAuthor(nonEmpty(g.company, "Magazzino"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, g.company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Lines))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y referencia + fecha + estado (der).
func headerRow(doc dto.OrderDocument, company string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(company, "Magazzino"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ORDEN DE COMPRA", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(doc.Reference, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+doc.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Estado: "+nonEmpty(doc.Status, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: columnas Product;SKU;Warehouse;Quantity.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("SKU", 3, align.Left),
		h("Bodega", 2, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea.
func tableDetailRows(lines []dto.OrderDocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(l.Product, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Warehouse, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(l.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalsRow: número de líneas y unidades pedidas.
func totalsRow(lines []dto.OrderDocumentLine) core.Row {
	units := 0
	for _, l := range lines {
		units += l.Quantity
	}
	return row.New(12).Add(
		col.New(6),
		col.New(6).Add(
			text.New(fmt.Sprintf("Líneas: %d", len(lines)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 1,
			}),
			text.New(fmt.Sprintf("Unidades: %d", units), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 6,
				Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

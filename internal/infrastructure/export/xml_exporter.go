package export

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
)

var _ ports.OrderExporter = (*XMLExporter)(nil)

// XMLExporter serializa la orden como documento XML para intercambio con proveedores:
//
//	<PurchaseOrder id="PO-2026-123" status="sent" createdAt="...">
//	  <Lines count="2">
//	    <Line><Product/><SKU/><Warehouse/><Quantity/></Line>
//	  </Lines>
//	</PurchaseOrder>
type XMLExporter struct{}

// NewXMLExporter construye el exportador.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

func (XMLExporter) Format() string      { return "xml" }
func (XMLExporter) ContentType() string { return "application/xml" }

// Export genera el XML con sangría de dos espacios.
func (XMLExporter) Export(_ context.Context, doc dto.OrderDocument) ([]byte, error) {
	xdoc := etree.NewDocument()
	xdoc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := xdoc.CreateElement("PurchaseOrder")
	root.CreateAttr("id", doc.Reference)
	root.CreateAttr("status", doc.Status)
	root.CreateAttr("createdAt", doc.CreatedAt.UTC().Format(time.RFC3339))

	lines := root.CreateElement("Lines")
	lines.CreateAttr("count", strconv.Itoa(len(doc.Lines)))
	for _, l := range doc.Lines {
		el := lines.CreateElement("Line")
		el.CreateElement("Product").SetText(l.Product)
		el.CreateElement("SKU").SetText(l.SKU)
		el.CreateElement("Warehouse").SetText(l.Warehouse)
		el.CreateElement("Quantity").SetText(strconv.Itoa(l.Quantity))
	}

	xdoc.Indent(2)
	out, err := xdoc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar orden: %w", err)
	}
	return out, nil
}

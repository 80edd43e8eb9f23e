// Package export convierte documentos de orden en archivos descargables (CSV y XML).
// El PDF vive en el paquete pdf.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
)

var _ ports.OrderExporter = (*CSVExporter)(nil)

// csvHeader columnas fijas del archivo.
var csvHeader = []string{"Product", "SKU", "Warehouse", "Quantity"}

// CSVExporter escribe una fila de cabecera y una fila por línea, separadas por ';'.
// Los campos que contienen ';', comillas o saltos de línea se entrecomillan (RFC 4180).
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

func (CSVExporter) Format() string      { return "csv" }
func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// Export genera el CSV.
func (CSVExporter) Export(_ context.Context, doc dto.OrderDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, l := range doc.Lines {
		if err := w.Write([]string{l.Product, l.SKU, l.Warehouse, strconv.Itoa(l.Quantity)}); err != nil {
			return nil, fmt.Errorf("csv: escribir línea %s: %w", l.SKU, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}

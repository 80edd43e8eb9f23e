package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
)

// ExportedFile archivo generado por un exportador.
type ExportedFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// OrderUseCase consulta la historia de órdenes de compra y las exporta.
type OrderUseCase struct {
	orderRepo repository.PurchaseOrderRepository
	exporters map[string]ports.OrderExporter
}

// NewOrderUseCase construye el caso de uso con los exportadores disponibles, indexados por formato.
func NewOrderUseCase(orderRepo repository.PurchaseOrderRepository, exporters ...ports.OrderExporter) *OrderUseCase {
	byFormat := make(map[string]ports.OrderExporter, len(exporters))
	for _, x := range exporters {
		byFormat[x.Format()] = x
	}
	return &OrderUseCase{orderRepo: orderRepo, exporters: byFormat}
}

// List devuelve la historia completa, más reciente primero.
func (uc *OrderUseCase) List(ctx context.Context) (*dto.PurchaseOrderListResponse, error) {
	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	out := make([]dto.PurchaseOrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToPurchaseOrderDTO(o))
	}
	return &dto.PurchaseOrderListResponse{Items: out, Total: len(out)}, nil
}

// Get devuelve una orden por ID.
func (uc *OrderUseCase) Get(ctx context.Context, id string) (*dto.PurchaseOrderDTO, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	resp := ToPurchaseOrderDTO(o)
	return &resp, nil
}

// Export genera el archivo de una orden confirmada en el formato pedido.
func (uc *OrderUseCase) Export(ctx context.Context, id, format string) (*ExportedFile, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return uc.ExportDocument(ctx, OrderDocumentFromPurchaseOrder(o), format)
}

// ExportDocument genera el archivo de cualquier documento de orden (por ejemplo la propuesta viva).
func (uc *OrderUseCase) ExportDocument(ctx context.Context, doc dto.OrderDocument, format string) (*ExportedFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	x, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportación %q", domain.ErrValidation, format)
	}
	body, err := x.Export(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &ExportedFile{
		Filename:    fmt.Sprintf("%s.%s", doc.Reference, x.Format()),
		ContentType: x.ContentType(),
		Body:        body,
	}, nil
}

// JournalUseCase lee el diario de movimientos aplicados.
type JournalUseCase struct {
	movRepo repository.StockMovementRepository
}

// DefaultJournalLimit cantidad de movimientos devuelta cuando no se indica límite.
const DefaultJournalLimit = 50

// NewJournalUseCase construye el caso de uso.
func NewJournalUseCase(movRepo repository.StockMovementRepository) *JournalUseCase {
	return &JournalUseCase{movRepo: movRepo}
}

// Recent devuelve los últimos movimientos, más reciente primero. Límite fuera de 1..500 usa el valor por defecto.
func (uc *JournalUseCase) Recent(ctx context.Context, limit int) ([]dto.StockMovementDTO, error) {
	if limit <= 0 || limit > 500 {
		limit = DefaultJournalLimit
	}
	movs, err := uc.movRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	out := make([]dto.StockMovementDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, toStockMovementDTO(m))
	}
	return out, nil
}

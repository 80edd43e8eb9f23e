package inventory

import (
	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

// ToItemResponse mapea un ítem de dominio a su DTO de salida.
func ToItemResponse(it *entity.InventoryItem) dto.ItemResponse {
	var minStock *int
	if it.MinStock != nil {
		v := *it.MinStock
		minStock = &v
	}
	return dto.ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		SKU:          it.SKU,
		Quantity:     it.Quantity,
		Category:     it.Category,
		Warehouse:    it.Warehouse.String(),
		MinStock:     minStock,
		BelowMinimum: it.BelowThreshold(),
		UpdatedAt:    it.UpdatedAt,
	}
}

func toItemResponses(items []*entity.InventoryItem) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToItemResponse(it))
	}
	return out
}

func toReorderLineDTOs(lines []entity.ReorderLine) []dto.ReorderLineDTO {
	out := make([]dto.ReorderLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.ReorderLineDTO{
			ItemID:     l.ItemID,
			Name:       l.Name,
			SKU:        l.SKU,
			Warehouse:  l.Warehouse.String(),
			ReorderQty: l.ReorderQty,
		})
	}
	return out
}

// ToPurchaseOrderDTO mapea una orden confirmada.
func ToPurchaseOrderDTO(o *entity.PurchaseOrder) dto.PurchaseOrderDTO {
	lines := make([]dto.PurchaseOrderLineDTO, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, dto.PurchaseOrderLineDTO{
			Name:      l.Name,
			SKU:       l.SKU,
			Qty:       l.Qty,
			Warehouse: l.Warehouse.String(),
		})
	}
	return dto.PurchaseOrderDTO{
		ID:         o.ID,
		ItemsCount: o.ItemsCount,
		CreatedAt:  o.CreatedAt,
		Status:     o.Status,
		Items:      lines,
	}
}

// OrderDocumentFromPurchaseOrder arma el documento exportable de una orden confirmada.
func OrderDocumentFromPurchaseOrder(o *entity.PurchaseOrder) dto.OrderDocument {
	doc := dto.OrderDocument{
		Reference: o.ID,
		CreatedAt: o.CreatedAt,
		Status:    o.Status,
		Lines:     make([]dto.OrderDocumentLine, 0, len(o.Items)),
	}
	for _, l := range o.Items {
		doc.Lines = append(doc.Lines, dto.OrderDocumentLine{
			Product:   l.Name,
			SKU:       l.SKU,
			Warehouse: l.Warehouse.String(),
			Quantity:  l.Qty,
		})
	}
	return doc
}

func toStockMovementDTO(m *entity.StockMovement) dto.StockMovementDTO {
	return dto.StockMovementDTO{
		ID:              m.ID,
		ItemID:          m.ItemID,
		SKU:             m.SKU,
		Warehouse:       m.Warehouse.String(),
		TargetWarehouse: m.TargetWarehouse.String(),
		Direction:       m.Direction,
		Qty:             m.Qty,
		QuantityBefore:  m.QuantityBefore,
		QuantityAfter:   m.QuantityAfter,
		UserID:          m.UserID,
		CreatedAt:       m.CreatedAt,
	}
}

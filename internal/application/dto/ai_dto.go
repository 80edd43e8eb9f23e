package dto

// InsightItemDTO fila de la instantánea enviada al asesor IA.
type InsightItemDTO struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Qty      int    `json:"qty"`
	MinStock *int   `json:"min"`
}

// InsightDTO consejo devuelto por el asesor IA.
type InsightDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// InsightListResponse respuesta de GET /api/insights.
type InsightListResponse struct {
	Items []InsightDTO `json:"items"`
}

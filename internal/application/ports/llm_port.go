package ports

import (
	"context"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
)

// LLMService define el puerto de salida para el asesor de inventario basado en IA.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// Sus respuestas son consultivas: ningún cálculo de reposición o movimiento depende de ellas.
type LLMService interface {
	// SuggestInventoryInsights recibe una instantánea del inventario y devuelve
	// consejos legibles (título + descripción).
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	SuggestInventoryInsights(ctx context.Context, items []dto.InsightItemDTO) ([]dto.InsightDTO, error)
}

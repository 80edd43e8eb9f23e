package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/internal/domain/repository"
	"github.com/jhoicas/magazzino-api/pkg/logger"
)

const insightsTimeout = 10 * time.Second

// InsightsUseCase consulta al asesor IA con una instantánea del inventario.
// Es consultivo: cualquier fallo devuelve una lista vacía y sólo se registra en el log.
type InsightsUseCase struct {
	itemRepo repository.InventoryItemRepository
	llm      ports.LLMService
	log      *logger.Logger
	timeout  time.Duration
}

// NewInsightsUseCase construye el caso de uso. llm puede ser nil (asesor deshabilitado).
func NewInsightsUseCase(itemRepo repository.InventoryItemRepository, llm ports.LLMService, log *logger.Logger) *InsightsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InsightsUseCase{itemRepo: itemRepo, llm: llm, log: log.Component("insights"), timeout: insightsTimeout}
}

// Suggest devuelve los consejos del asesor sobre la vista actual; warehouse vacío = inventario global.
// Nunca devuelve error.
func (uc *InsightsUseCase) Suggest(ctx context.Context, warehouse entity.WarehouseName) []dto.InsightDTO {
	empty := []dto.InsightDTO{}
	if uc.llm == nil {
		return empty
	}
	items, err := uc.itemRepo.List(ctx, warehouse)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo leer el inventario para el asesor")
		return empty
	}
	snapshot := make([]dto.InsightItemDTO, 0, len(items))
	for _, it := range items {
		snapshot = append(snapshot, dto.InsightItemDTO{
			Name:     it.Name,
			SKU:      it.SKU,
			Qty:      it.Quantity,
			MinStock: it.MinStock,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	out, err := uc.llm.SuggestInventoryInsights(ctx, snapshot)
	if err != nil {
		uc.log.Warn().Err(err).Msg("el asesor IA no respondió")
		return empty
	}
	if out == nil {
		return empty
	}
	return out
}

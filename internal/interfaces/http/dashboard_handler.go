package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/magazzino-api/internal/application/analytics"
	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/domain"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

// DashboardHandler maneja el tablero y los consejos del asesor IA.
type DashboardHandler struct {
	uc       *appanalytics.DashboardUseCase
	insights *appanalytics.InsightsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, insights *appanalytics.InsightsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, insights: insights}
}

// GetSummary devuelve los KPIs de existencias por bodega y la última orden.
// GET /api/dashboard
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetInsights devuelve consejos del asesor IA sobre la vista actual (?warehouse= opcional).
// Sin asesor o con error la lista va vacía; sólo una bodega desconocida responde 400.
// GET /api/insights
func (h *DashboardHandler) GetInsights(c *fiber.Ctx) error {
	wh := entity.WarehouseName(strings.TrimSpace(c.Query("warehouse")))
	if wh != "" && !wh.Valid() {
		return respondError(c, fmt.Errorf("%w: bodega desconocida %q", domain.ErrValidation, wh))
	}
	items := h.insights.Suggest(c.UserContext(), wh)
	if items == nil {
		items = []dto.InsightDTO{}
	}
	return c.JSON(dto.InsightListResponse{Items: items})
}

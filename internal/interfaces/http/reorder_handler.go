package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/application/validation"
)

// ReorderHandler expone el motor de reposición de la sesión del operador.
type ReorderHandler struct {
	sessions  *inventory.Sessions
	orders    *inventory.OrderUseCase
	validator *validation.Validator
}

// NewReorderHandler construye el handler.
func NewReorderHandler(sessions *inventory.Sessions, orders *inventory.OrderUseCase, v *validation.Validator) *ReorderHandler {
	return &ReorderHandler{sessions: sessions, orders: orders, validator: v}
}

func (h *ReorderHandler) engine(c *fiber.Ctx) *inventory.ReorderEngine {
	return h.sessions.Engine(GetUserID(c))
}

// State godoc
// @Summary      Estado de la propuesta (la calcula la primera vez)
// @Tags         reorder
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReorderStateDTO
// @Router       /api/reorder [get]
func (h *ReorderHandler) State(c *fiber.Ctx) error {
	out, err := h.engine(c).EnsureProposal(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Recalcular la propuesta descartando ediciones
// @Tags         reorder
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReorderStateDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reorder/refresh [post]
func (h *ReorderHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.engine(c).ComputeProposal(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SwitchView godoc
// @Summary      Cambiar entre propuesta e historia
// @Tags         reorder
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchViewRequest  true  "proposal | history"
// @Success      200   {object}  dto.ReorderStateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reorder/view [post]
func (h *ReorderHandler) SwitchView(c *fiber.Ctx) error {
	var in dto.SwitchViewRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validator.Struct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.engine(c).SwitchView(c.UserContext(), inventory.View(in.View))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AdjustQty godoc
// @Summary      Ajustar la cantidad de una línea (mínimo 1)
// @Tags         reorder
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem de la línea"
// @Param        body  body  dto.AdjustQtyRequest  true  "delta"
// @Success      200   {object}  dto.ReorderStateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reorder/lines/{id}/adjust [post]
func (h *ReorderHandler) AdjustQty(c *fiber.Ctx) error {
	var in dto.AdjustQtyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validator.Struct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.engine(c).AdjustQty(GetUser(c), c.Params("id"), in.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar una línea de la propuesta
// @Tags         reorder
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem de la línea"
// @Success      200  {object}  dto.ReorderStateDTO
// @Router       /api/reorder/lines/{id} [delete]
func (h *ReorderHandler) RemoveLine(c *fiber.Ctx) error {
	out, err := h.engine(c).RemoveLine(GetUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EnterReview godoc
// @Summary      Pasar la propuesta a revisión
// @Tags         reorder
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReorderStateDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reorder/review [post]
func (h *ReorderHandler) EnterReview(c *fiber.Ctx) error {
	out, err := h.engine(c).EnterReview(GetUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CancelReview godoc
// @Summary      Volver de revisión a edición
// @Tags         reorder
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReorderStateDTO
// @Router       /api/reorder/review/cancel [post]
func (h *ReorderHandler) CancelReview(c *fiber.Ctx) error {
	out, err := h.engine(c).CancelReview(GetUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar la propuesta como orden de compra
// @Tags         reorder
// @Security     Bearer
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Clave de idempotencia"
// @Success      201  {object}  dto.PurchaseOrderDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reorder/confirm [post]
func (h *ReorderHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.engine(c).Confirm(c.UserContext(), GetUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Export godoc
// @Summary      Exportar la propuesta viva
// @Tags         reorder
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | pdf | xml"  default(csv)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reorder/export [get]
func (h *ReorderHandler) Export(c *fiber.Ctx) error {
	file, err := h.orders.ExportDocument(c.UserContext(), h.engine(c).ProposalDocument(), c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// sendFile entrega un archivo exportado como adjunto.
func sendFile(c *fiber.Ctx, file *inventory.ExportedFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Body)
}

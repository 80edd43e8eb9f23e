package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
	"github.com/jhoicas/magazzino-api/internal/application/validation"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
)

// MovementHandler expone el conciliador de movimientos de la sesión y el diario.
type MovementHandler struct {
	sessions  *inventory.Sessions
	journal   *inventory.JournalUseCase
	validator *validation.Validator
	device    DeviceFactory
}

// DeviceFactory abre un dispositivo de captura sobre la lectura cruda recibida.
type DeviceFactory func(raw string) ports.CaptureDevice

// NewMovementHandler construye el handler. device nil deshabilita el escaneo.
func NewMovementHandler(sessions *inventory.Sessions, journal *inventory.JournalUseCase, v *validation.Validator, device DeviceFactory) *MovementHandler {
	return &MovementHandler{sessions: sessions, journal: journal, validator: v, device: device}
}

func (h *MovementHandler) reconciler(c *fiber.Ctx) *inventory.Reconciler {
	return h.sessions.Reconciler(GetUserID(c))
}

// State godoc
// @Summary      Estado del conciliador del operador
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementStateDTO
// @Router       /api/movements/state [get]
func (h *MovementHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.reconciler(c).Snapshot())
}

// Resolve godoc
// @Summary      Resolver un SKU (entrada manual)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResolveSKURequest  true  "sku"
// @Success      200   {object}  dto.MovementStateDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/resolve [post]
func (h *MovementHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveSKURequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validator.Struct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.reconciler(c).Resolve(c.UserContext(), in.SKU)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Scan godoc
// @Summary      Resolver un SKU desde la lectura cruda de un lector de códigos
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "code"
// @Success      200   {object}  dto.MovementStateDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/movements/scan [post]
func (h *MovementHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validator.Struct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.reconciler(c).Scan(c.UserContext(), h.device(in.Code))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetTarget godoc
// @Summary      Elegir bodega destino
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetTargetRequest  true  "warehouse"
// @Success      200   {object}  dto.MovementStateDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/target [put]
func (h *MovementHandler) SetTarget(c *fiber.Ctx) error {
	var in dto.SetTargetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validator.Struct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.reconciler(c).SetTargetWarehouse(entity.WarehouseName(in.Warehouse))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetQty godoc
// @Summary      Fijar cantidad a mover (mínimo 1)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetQtyRequest  true  "qty"
// @Success      200   {object}  dto.MovementStateDTO
// @Router       /api/movements/qty [put]
func (h *MovementHandler) SetQty(c *fiber.Ctx) error {
	var in dto.SetQtyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.reconciler(c).SetQty(in.Qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Apply godoc
// @Summary      Aplicar carga o descarga al ítem resuelto
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Clave de idempotencia"
// @Param        body  body  dto.ApplyMovementRequest  true  "load | unload"
// @Success      200   {object}  dto.ItemResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/movements/apply [post]
func (h *MovementHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validator.Struct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.reconciler(c).Apply(c.UserContext(), GetUser(c), in.Direction)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Restart godoc
// @Summary      Reiniciar el conciliador
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementStateDTO
// @Router       /api/movements/restart [post]
func (h *MovementHandler) Restart(c *fiber.Ctx) error {
	return c.JSON(h.reconciler(c).Restart())
}

// Journal godoc
// @Summary      Últimos movimientos aplicados
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite (1-500)"  default(50)
// @Success      200    {array}  dto.StockMovementDTO
// @Router       /api/movements [get]
func (h *MovementHandler) Journal(c *fiber.Ctx) error {
	out, err := h.journal.Recent(c.UserContext(), c.QueryInt("limit", inventory.DefaultJournalLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

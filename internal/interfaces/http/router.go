package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/magazzino-api/internal/application/analytics"
	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
	"github.com/jhoicas/magazzino-api/internal/application/validation"
	"github.com/jhoicas/magazzino-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *inventory.ItemUseCase
	OrderUC       *inventory.OrderUseCase
	JournalUC     *inventory.JournalUseCase
	Sessions      *inventory.Sessions
	DashboardUC   *appanalytics.DashboardUseCase
	InsightsUC    *appanalytics.InsightsUseCase
	Validator     *validation.Validator
	Idempotency   ports.IdempotencyStore // nil = sin control de idempotencia
	CaptureDevice DeviceFactory          // nil = sin /api/movements/scan
	Log           *logger.Logger

	JWTSecret     string
	JWTIssuer     string
	JWTExpMinutes int
	DemoLogin     bool // sólo en development
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.JWTSecret, deps.JWTIssuer, deps.JWTExpMinutes, deps.Validator)
	if deps.DemoLogin {
		api.Post("/auth/demo-login", authHandler.DemoLogin)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	mutate := RequireMutation()
	idem := Idempotency(deps.Idempotency, log)

	protected.Get("/me", authHandler.Me)

	itemHandler := NewItemHandler(deps.ItemUC)
	protected.Get("/warehouses", itemHandler.Warehouses)
	items := protected.Group("/items")
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", mutate, itemHandler.Create)
	items.Patch("/:id", mutate, itemHandler.Update)
	items.Delete("/:id", mutate, itemHandler.Delete)

	// Reposición: el estado vive en la sesión del usuario
	reorderHandler := NewReorderHandler(deps.Sessions, deps.OrderUC, deps.Validator)
	reorder := protected.Group("/reorder")
	reorder.Get("/", reorderHandler.State)
	reorder.Get("/export", reorderHandler.Export)
	reorder.Post("/refresh", reorderHandler.Refresh)
	reorder.Post("/view", reorderHandler.SwitchView)
	reorder.Post("/lines/:id/adjust", mutate, reorderHandler.AdjustQty)
	reorder.Delete("/lines/:id", mutate, reorderHandler.RemoveLine)
	reorder.Post("/review", mutate, reorderHandler.EnterReview)
	reorder.Post("/review/cancel", mutate, reorderHandler.CancelReview)
	reorder.Post("/confirm", mutate, idem, reorderHandler.Confirm)

	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/purchase-orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/export", orderHandler.Export)

	movementHandler := NewMovementHandler(deps.Sessions, deps.JournalUC, deps.Validator, deps.CaptureDevice)
	movements := protected.Group("/movements")
	movements.Get("/", movementHandler.Journal)
	movements.Get("/state", movementHandler.State)
	movements.Post("/resolve", movementHandler.Resolve)
	if deps.CaptureDevice != nil {
		movements.Post("/scan", movementHandler.Scan)
	}
	movements.Put("/target", movementHandler.SetTarget)
	movements.Put("/qty", movementHandler.SetQty)
	movements.Post("/apply", mutate, idem, movementHandler.Apply)
	movements.Post("/restart", movementHandler.Restart)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.InsightsUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
	protected.Get("/insights", dashboardHandler.GetInsights)
}

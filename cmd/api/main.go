package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/magazzino-api/docs"
	appanalytics "github.com/jhoicas/magazzino-api/internal/application/analytics"
	"github.com/jhoicas/magazzino-api/internal/application/inventory"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
	"github.com/jhoicas/magazzino-api/internal/application/validation"
	infraai "github.com/jhoicas/magazzino-api/internal/infrastructure/ai"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/cache"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/capture"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/export"
	"github.com/jhoicas/magazzino-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/magazzino-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/magazzino-api/internal/interfaces/http"
	"github.com/jhoicas/magazzino-api/pkg/config"
	"github.com/jhoicas/magazzino-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenes")
	}
	defer st.close()

	recorder := metrics.NewRecorder()

	var idem ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no responde; se reintentará en cada petición")
		}
		cancel()
		idem = cache.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
	} else {
		log.Info().Msg("REDIS_ADDR vacío: idempotencia deshabilitada")
	}

	var advisor ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		if cfg.AI.AnthropicAPIKey != "" {
			advisor = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
		}
	default:
		if cfg.AI.GeminiAPIKey != "" {
			advisor = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		}
	}
	if advisor == nil {
		log.Info().Str("provider", cfg.AI.Provider).Msg("asesor IA sin API key: insights vacíos")
	}

	v := validation.New()
	itemUC := inventory.NewItemUseCase(st.items, v, log)
	orderUC := inventory.NewOrderUseCase(st.orders,
		export.NewCSVExporter(),
		export.NewXMLExporter(),
		infrapdf.NewMarotoOrderExporter(cfg.App.Name),
	)
	journalUC := inventory.NewJournalUseCase(st.movements)
	sessions := inventory.NewSessions(
		func() *inventory.ReorderEngine {
			return inventory.NewReorderEngine(st.items, st.orders, recorder, log)
		},
		func() *inventory.Reconciler {
			return inventory.NewReconciler(st.items, st.tx, recorder, log)
		},
	)
	dashboardUC := appanalytics.NewDashboardUseCase(st.items, st.orders)
	insightsUC := appanalytics.NewInsightsUseCase(st.items, advisor, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.Metrics(recorder))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": st.backend})
	})
	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:        itemUC,
		OrderUC:       orderUC,
		JournalUC:     journalUC,
		Sessions:      sessions,
		DashboardUC:   dashboardUC,
		InsightsUC:    insightsUC,
		Validator:     v,
		Idempotency:   idem,
		CaptureDevice: func(raw string) ports.CaptureDevice { return capture.NewPayloadDevice(raw) },
		Log:           log,
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		JWTExpMinutes: cfg.JWT.Expiration,
		DemoLogin:     cfg.App.IsDevelopment(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

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

	"github.com/bodegapp/bodegapp-api/docs"
	"github.com/bodegapp/bodegapp-api/internal/application/dto"
	"github.com/bodegapp/bodegapp-api/internal/application/ports"
	"github.com/bodegapp/bodegapp-api/internal/application/usecase"
	"github.com/bodegapp/bodegapp-api/internal/domain/analytics"
	"github.com/bodegapp/bodegapp-api/internal/infrastructure/cache"
	"github.com/bodegapp/bodegapp-api/internal/infrastructure/metrics"
	"github.com/bodegapp/bodegapp-api/internal/infrastructure/postgres"
	httpRouter "github.com/bodegapp/bodegapp-api/internal/interfaces/http"
	"github.com/bodegapp/bodegapp-api/pkg/config"
	"github.com/bodegapp/bodegapp-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("db", postgres.Target(cfg.DB)).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	snapshotCache, err := cache.NewSnapshotCache(cfg.Cache)
	if err != nil {
		// sin Redis la API sigue funcionando contra PostgreSQL
		log.Warn().Err(err).Msg("caché de snapshots deshabilitado")
		snapshotCache = cache.NewNoopSnapshotCache()
	}

	var (
		prom      *metrics.Metrics
		ucMetrics ports.AnalyticsMetrics = metrics.Nop{}
	)
	if cfg.Metrics.Enabled {
		prom = metrics.New(cfg.Metrics.Prefix)
		ucMetrics = prom
	}

	analyticsUC := usecase.NewAnalyticsUseCase(
		postgres.NewProductRepository(pool),
		postgres.NewSaleRepository(pool),
		snapshotCache,
		ucMetrics,
		analytics.NewEngine(cfg.Analytics.Thresholds()),
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // snapshots de /evaluate
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	if prom != nil {
		app.Use(httpRouter.Metrics(prom))
		app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "BodegApp Analytics API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		res := dto.HealthResponse{Status: "ok", Database: "ok", Cache: "disabled"}
		if cfg.Cache.Enabled {
			res.Cache = "enabled"
		}
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			res.Status, res.Database = "degraded", "unreachable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(res)
		}
		return c.JSON(res)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AnalyticsUC: analyticsUC,
		Logger:      log,
		JWTSecret:   cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

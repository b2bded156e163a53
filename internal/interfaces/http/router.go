package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bodegapp/bodegapp-api/internal/application/usecase"
	"github.com/bodegapp/bodegapp-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AnalyticsUC *usecase.AnalyticsUseCase
	Logger      *logger.Logger
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Analítica (Bearer + tenant; solo admin y bodeguero)
	analytics := api.Group("/analytics",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(RoleAdmin, RoleBodeguero),
	)
	h := NewAnalyticsHandler(deps.AnalyticsUC, deps.Logger)

	analytics.Get("/rotation", h.GetRotation)
	analytics.Get("/rotation/dead", h.GetDeadStock)
	analytics.Get("/rotation/slow", h.GetSlowMovingStock)

	analytics.Get("/profitability", h.GetProfitability)
	analytics.Get("/profitability/categories", h.GetCategoryProfitability)

	analytics.Get("/stock", h.GetStockPredictions)
	analytics.Get("/stock/alerts", h.GetStockAlerts)
	analytics.Get("/stock/low", h.GetLowStock)

	analytics.Get("/trends", h.GetBusinessTrend)
	analytics.Get("/trends/weekly", h.GetWeeklyComparison)
	analytics.Get("/trends/monthly", h.GetMonthlyComparison)

	analytics.Get("/dashboard", h.GetDashboard)
	analytics.Post("/evaluate", h.Evaluate)
}

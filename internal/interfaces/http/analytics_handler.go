package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bodegapp/bodegapp-api/internal/application/dto"
	"github.com/bodegapp/bodegapp-api/internal/application/usecase"
	"github.com/bodegapp/bodegapp-api/internal/domain"
	"github.com/bodegapp/bodegapp-api/pkg/logger"
)

// AnalyticsHandler maneja los endpoints de analítica de inventario y ventas.
type AnalyticsHandler struct {
	uc  *usecase.AnalyticsUseCase
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase, log *logger.Logger) *AnalyticsHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AnalyticsHandler{uc: uc, log: log.Component("http")}
}

func (h *AnalyticsHandler) fail(c *fiber.Ctx, err error) error {
	if !isClientError(err) {
		h.log.Error().Err(err).Str("path", c.Path()).Str("tenant_id", GetTenantID(c)).Msg("analytics")
	}
	return writeError(c, err)
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrTenantRequired) ||
		errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrNotFound)
}

func invalidParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
	})
}

// GetRotation godoc
// @Summary      Rotación de inventario
// @Description  Días desde la última venta y estado active/slow/dead por producto. Nunca vendido = 999.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        days_threshold  query  int  false  "Días para 'slow' (default 30)"
// @Success      200  {object}  dto.RotationReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/rotation [get]
func (h *AnalyticsHandler) GetRotation(c *fiber.Ctx) error {
	var q dto.RotationQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.GetRotation(c.UserContext(), GetTenantID(c), q)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetDeadStock godoc
// @Summary      Stock muerto
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Días sin venta (default 60)"
// @Success      200  {object}  dto.RotationReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/rotation/dead [get]
func (h *AnalyticsHandler) GetDeadStock(c *fiber.Ctx) error {
	var q dto.ThresholdQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.GetDeadStock(c.UserContext(), GetTenantID(c), q)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetSlowMovingStock godoc
// @Summary      Stock de baja rotación
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Días para 'slow' (default 30)"
// @Success      200  {object}  dto.RotationReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/rotation/slow [get]
func (h *AnalyticsHandler) GetSlowMovingStock(c *fiber.Ctx) error {
	var q dto.ThresholdQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.GetSlowMovingStock(c.UserContext(), GetTenantID(c), q)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetProfitability godoc
// @Summary      Rentabilidad por producto (matriz BCG)
// @Description  Ingresos, costo, margen y cuadrante star/cash-cow/question-mark/dog, ordenado por margen.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfitabilityReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/profitability [get]
func (h *AnalyticsHandler) GetProfitability(c *fiber.Ctx) error {
	out, err := h.uc.GetProfitability(c.UserContext(), GetTenantID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetCategoryProfitability godoc
// @Summary      Rentabilidad por categoría
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryProfitabilityDTO
// @Router       /api/analytics/profitability/categories [get]
func (h *AnalyticsHandler) GetCategoryProfitability(c *fiber.Ctx) error {
	out, err := h.uc.GetCategoryProfitability(c.UserContext(), GetTenantID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetStockPredictions godoc
// @Summary      Predicción de quiebre de stock
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        lookback_days   query  int  false  "Ventana de velocidad (default 7)"
// @Param        lead_time_days  query  int  false  "Tiempo de reposición (default 3)"
// @Success      200  {object}  dto.StockReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/stock [get]
func (h *AnalyticsHandler) GetStockPredictions(c *fiber.Ctx) error {
	var q dto.StockQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.GetStockPredictions(c.UserContext(), GetTenantID(c), q)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetStockAlerts godoc
// @Summary      Alertas de stock critical y warning
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        lookback_days   query  int  false  "Ventana de velocidad (default 7)"
// @Param        lead_time_days  query  int  false  "Tiempo de reposición (default 3)"
// @Success      200  {object}  dto.StockAlertsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/stock/alerts [get]
func (h *AnalyticsHandler) GetStockAlerts(c *fiber.Ctx) error {
	var q dto.StockQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.GetStockAlerts(c.UserContext(), GetTenantID(c), q)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetLowStock godoc
// @Summary      Productos bajo stock mínimo
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockDTO
// @Router       /api/analytics/stock/low [get]
func (h *AnalyticsHandler) GetLowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStock(c.UserContext(), GetTenantID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetWeeklyComparison godoc
// @Summary      Últimos 7 días vs 7 anteriores
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodComparisonDTO
// @Router       /api/analytics/trends/weekly [get]
func (h *AnalyticsHandler) GetWeeklyComparison(c *fiber.Ctx) error {
	out, err := h.uc.GetWeeklyComparison(c.UserContext(), GetTenantID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetMonthlyComparison godoc
// @Summary      Últimos 30 días vs 30 anteriores
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodComparisonDTO
// @Router       /api/analytics/trends/monthly [get]
func (h *AnalyticsHandler) GetMonthlyComparison(c *fiber.Ctx) error {
	out, err := h.uc.GetMonthlyComparison(c.UserContext(), GetTenantID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetBusinessTrend godoc
// @Summary      Tendencia del negocio
// @Description  growing/declining si las variaciones semanal y mensual superan ±5%; intensidad por promedio de |Δ|.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessTrendDTO
// @Router       /api/analytics/trends [get]
func (h *AnalyticsHandler) GetBusinessTrend(c *fiber.Ctx) error {
	out, err := h.uc.GetBusinessTrend(c.UserContext(), GetTenantID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetDashboard godoc
// @Summary      Dashboard de analítica
// @Description  Todas las vistas calculadas sobre el mismo snapshot e instante.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AnalyticsDashboardDTO
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.UserContext(), GetTenantID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Evaluate godoc
// @Summary      Evalúa un snapshot ad hoc
// @Description  Corre el dashboard sobre productos y ventas enviados en el cuerpo, sin leer el data store.
// @Tags         analytics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EvaluateRequest  true  "Snapshot"
// @Success      200  {object}  dto.AnalyticsDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/evaluate [post]
func (h *AnalyticsHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo JSON inválido",
		})
	}
	out, err := h.uc.Evaluate(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

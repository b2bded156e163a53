package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// RotationQuery parámetros para GET /api/analytics/rotation.
type RotationQuery struct {
	DaysThreshold int `query:"days_threshold"` // 0 = umbral configurado (30)
}

// ThresholdQuery parámetros para /rotation/dead y /rotation/slow.
type ThresholdQuery struct {
	Threshold int `query:"threshold"`
}

// StockQuery parámetros para /stock y /stock/alerts.
type StockQuery struct {
	LookbackDays int `query:"lookback_days"`  // 0 = ventana configurada (7)
	LeadTimeDays int `query:"lead_time_days"` // 0 = reposición configurada (3)
}

// EvaluateRequest cuerpo de POST /api/analytics/evaluate: snapshot ad hoc sin
// pasar por el data store. Now vacío usa el reloj del servidor.
type EvaluateRequest struct {
	Products      []entity.Product `json:"products"`
	Sales         []entity.Sale    `json:"sales"`
	Now           *time.Time       `json:"now,omitempty"`
	DaysThreshold int              `json:"days_threshold,omitempty"`
	LookbackDays  int              `json:"lookback_days,omitempty"`
	LeadTimeDays  int              `json:"lead_time_days,omitempty"`
}

// ── Rotación ──────────────────────────────────────────────────────────────────

// ProductRotationDTO rotación de un producto.
type ProductRotationDTO struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	DaysSinceLastSale int             `json:"days_since_last_sale"` // 999 = nunca vendido
	TotalSales        decimal.Decimal `json:"total_sales"`          // unidades históricas
	LastSaleDate      *time.Time      `json:"last_sale_date"`
	Status            string          `json:"status"` // active|slow|dead
}

// RotationCountsDTO productos por estado de rotación.
type RotationCountsDTO struct {
	Active int `json:"active"`
	Slow   int `json:"slow"`
	Dead   int `json:"dead"`
}

// RotationReportDTO respuesta de /rotation, /rotation/dead y /rotation/slow.
type RotationReportDTO struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Threshold   int                  `json:"threshold"`
	Counts      RotationCountsDTO    `json:"counts"`
	Items       []ProductRotationDTO `json:"items"`
}

// ── Rentabilidad ──────────────────────────────────────────────────────────────

// ProductProfitabilityDTO rentabilidad y cuadrante de un producto.
type ProductProfitabilityDTO struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Category       string          `json:"category"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	ProfitMargin   decimal.Decimal `json:"profit_margin"` // % sobre ingresos
	UnitsSold      decimal.Decimal `json:"units_sold"`
	AvgSalePrice   decimal.Decimal `json:"avg_sale_price"`
	Classification string          `json:"classification"` // star|cash-cow|question-mark|dog
}

// ClassificationSummaryDTO productos por cuadrante.
type ClassificationSummaryDTO struct {
	Stars         int `json:"stars"`
	CashCows      int `json:"cash_cows"`
	QuestionMarks int `json:"question_marks"`
	Dogs          int `json:"dogs"`
}

// ProfitabilityReportDTO respuesta de GET /api/analytics/profitability.
type ProfitabilityReportDTO struct {
	AverageMargin decimal.Decimal           `json:"average_margin"`
	Summary       ClassificationSummaryDTO  `json:"summary"`
	Items         []ProductProfitabilityDTO `json:"items"`
}

// CategoryProfitabilityDTO rentabilidad agregada por categoría.
type CategoryProfitabilityDTO struct {
	Category     string          `json:"category"`
	Products     int             `json:"products"`
	UnitsSold    decimal.Decimal `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// StockPredictionDTO predicción de quiebre de un producto.
type StockPredictionDTO struct {
	ProductID                string          `json:"product_id"`
	ProductName              string          `json:"product_name"`
	CurrentStock             decimal.Decimal `json:"current_stock"`
	SalesVelocity            decimal.Decimal `json:"sales_velocity"`      // unidades/día
	DaysUntilStockout        decimal.Decimal `json:"days_until_stockout"` // 999 = sin ventas recientes
	ReorderStatus            string          `json:"reorder_status"`      // ok|warning|critical
	SuggestedReorderDate     *time.Time      `json:"suggested_reorder_date"`
	SuggestedReorderQuantity decimal.Decimal `json:"suggested_reorder_quantity"`
}

// StockReportDTO respuesta de GET /api/analytics/stock.
type StockReportDTO struct {
	GeneratedAt  time.Time            `json:"generated_at"`
	LookbackDays int                  `json:"lookback_days"`
	LeadTimeDays int                  `json:"lead_time_days"`
	Items        []StockPredictionDTO `json:"items"`
}

// StockAlertsDTO respuesta de GET /api/analytics/stock/alerts.
type StockAlertsDTO struct {
	Critical []StockPredictionDTO `json:"critical"`
	Warning  []StockPredictionDTO `json:"warning"`
}

// LowStockDTO producto en o bajo su stock mínimo.
type LowStockDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Stock       decimal.Decimal `json:"stock"`
	MinStock    decimal.Decimal `json:"min_stock"`
	Deficit     decimal.Decimal `json:"deficit"`
}

// ── Tendencias ────────────────────────────────────────────────────────────────

// PeriodMetricsDTO totales de un período.
type PeriodMetricsDTO struct {
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalOrders int             `json:"total_orders"`
	AvgTicket   decimal.Decimal `json:"avg_ticket"`
}

// PeriodChangeDTO variación porcentual entre períodos.
type PeriodChangeDTO struct {
	Sales     decimal.Decimal `json:"sales"`
	Orders    decimal.Decimal `json:"orders"`
	AvgTicket decimal.Decimal `json:"avg_ticket"`
}

// PeriodComparisonDTO respuesta de /trends/weekly y /trends/monthly.
type PeriodComparisonDTO struct {
	Current  PeriodMetricsDTO `json:"current"`
	Previous PeriodMetricsDTO `json:"previous"`
	Change   PeriodChangeDTO  `json:"change"`
}

// BusinessTrendDTO respuesta de GET /api/analytics/trends.
type BusinessTrendDTO struct {
	Trend         string          `json:"trend"`    // growing|stable|declining
	Strength      string          `json:"strength"` // strong|moderate|weak
	WeeklyChange  decimal.Decimal `json:"weekly_change"`
	MonthlyChange decimal.Decimal `json:"monthly_change"`
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// AnalyticsDashboardDTO todas las vistas de analítica sobre un mismo snapshot y reloj.
type AnalyticsDashboardDTO struct {
	GeneratedAt   time.Time                  `json:"generated_at"`
	Rotation      RotationReportDTO          `json:"rotation"`
	Profitability ProfitabilityReportDTO     `json:"profitability"`
	Categories    []CategoryProfitabilityDTO `json:"categories"`
	Stock         StockReportDTO             `json:"stock"`
	Alerts        StockAlertsDTO             `json:"alerts"`
	LowStock      []LowStockDTO              `json:"low_stock"`
	Weekly        PeriodComparisonDTO        `json:"weekly"`
	Monthly       PeriodComparisonDTO        `json:"monthly"`
	Trend         BusinessTrendDTO           `json:"trend"`
}

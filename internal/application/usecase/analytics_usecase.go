package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bodegapp/bodegapp-api/internal/application/dto"
	"github.com/bodegapp/bodegapp-api/internal/application/ports"
	"github.com/bodegapp/bodegapp-api/internal/domain"
	"github.com/bodegapp/bodegapp-api/internal/domain/analytics"
	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
	"github.com/bodegapp/bodegapp-api/internal/domain/repository"
	"github.com/bodegapp/bodegapp-api/pkg/logger"
)

// Límite superior para umbrales en días recibidos por query.
const maxDaysParam = 3650

// Orígenes del snapshot (label de métricas).
const (
	sourceCache   = "cache"
	sourceStore   = "store"
	sourceRequest = "request"
)

// AnalyticsUseCase carga el snapshot del tenant y ejecuta el motor de analítica.
// Los resultados no se cachean: se recalculan en cada llamada con el reloj actual.
type AnalyticsUseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	cache    ports.SnapshotCache
	metrics  ports.AnalyticsMetrics
	engine   analytics.Engine
	log      *logger.Logger
	now      func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso. cache, metrics y log pueden ser nil.
func NewAnalyticsUseCase(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	cache ports.SnapshotCache,
	metrics ports.AnalyticsMetrics,
	engine analytics.Engine,
	log *logger.Logger,
) *AnalyticsUseCase {
	if cache == nil {
		cache = noopCache{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AnalyticsUseCase{
		products: products,
		sales:    sales,
		cache:    cache,
		metrics:  metrics,
		engine:   engine,
		log:      log.Component("analytics"),
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests y evaluación con fecha fija).
func (uc *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	uc.now = now
	return uc
}

// ── Rotación ──────────────────────────────────────────────────────────────────

// GetRotation clasifica todos los productos por días desde su última venta.
func (uc *AnalyticsUseCase) GetRotation(ctx context.Context, tenantID string, q dto.RotationQuery) (*dto.RotationReportDTO, error) {
	if err := checkDays("days_threshold", q.DaysThreshold); err != nil {
		return nil, err
	}
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetRotation: %w", err)
	}
	now := uc.now()
	threshold := orDefault(q.DaysThreshold, uc.engine.Thresholds().SlowStockDays)

	var rows []analytics.ProductRotation
	uc.observe("rotation", func() {
		rows = uc.engine.AnalyzeRotation(snap.Products, snap.Sales, threshold, now)
	})
	report := toRotationReport(rows, threshold, now)
	return &report, nil
}

// GetDeadStock productos sin venta hace más de threshold días (60 por defecto).
func (uc *AnalyticsUseCase) GetDeadStock(ctx context.Context, tenantID string, q dto.ThresholdQuery) (*dto.RotationReportDTO, error) {
	if err := checkDays("threshold", q.Threshold); err != nil {
		return nil, err
	}
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDeadStock: %w", err)
	}
	now := uc.now()
	threshold := orDefault(q.Threshold, uc.engine.Thresholds().DeadStockDays)

	var rows []analytics.ProductRotation
	uc.observe("dead_stock", func() {
		rows = uc.engine.DeadStock(snap.Products, snap.Sales, threshold, now)
	})
	report := toRotationReport(rows, threshold, now)
	return &report, nil
}

// GetSlowMovingStock productos en estado slow para el umbral dado (30 por defecto).
func (uc *AnalyticsUseCase) GetSlowMovingStock(ctx context.Context, tenantID string, q dto.ThresholdQuery) (*dto.RotationReportDTO, error) {
	if err := checkDays("threshold", q.Threshold); err != nil {
		return nil, err
	}
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSlowMovingStock: %w", err)
	}
	now := uc.now()
	threshold := orDefault(q.Threshold, uc.engine.Thresholds().SlowStockDays)

	var rows []analytics.ProductRotation
	uc.observe("slow_stock", func() {
		rows = uc.engine.SlowMovingStock(snap.Products, snap.Sales, threshold, now)
	})
	report := toRotationReport(rows, threshold, now)
	return &report, nil
}

// ── Rentabilidad ──────────────────────────────────────────────────────────────

// GetProfitability ranking por margen, margen promedio de la tienda y conteo por cuadrante.
func (uc *AnalyticsUseCase) GetProfitability(ctx context.Context, tenantID string) (*dto.ProfitabilityReportDTO, error) {
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProfitability: %w", err)
	}
	var rows []analytics.ProductProfitability
	uc.observe("profitability", func() {
		rows = uc.engine.AnalyzeProfitability(snap.Products, snap.Sales)
	})
	report := toProfitabilityReport(rows)
	return &report, nil
}

// GetCategoryProfitability rentabilidad agregada por categoría.
func (uc *AnalyticsUseCase) GetCategoryProfitability(ctx context.Context, tenantID string) ([]dto.CategoryProfitabilityDTO, error) {
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetCategoryProfitability: %w", err)
	}
	var cats []analytics.CategoryProfitability
	uc.observe("categories", func() {
		cats = analytics.CategoryBreakdown(uc.engine.AnalyzeProfitability(snap.Products, snap.Sales))
	})
	return toCategoryDTOs(cats), nil
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// GetStockPredictions velocidad, días hasta el quiebre y pedido sugerido por producto.
func (uc *AnalyticsUseCase) GetStockPredictions(ctx context.Context, tenantID string, q dto.StockQuery) (*dto.StockReportDTO, error) {
	if err := checkStockQuery(q); err != nil {
		return nil, err
	}
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetStockPredictions: %w", err)
	}
	now := uc.now()
	rows, lookback, lead := uc.predictStock(snap, q, now)
	report := uc.stockReport(rows, lookback, lead, now)
	return &report, nil
}

// GetStockAlerts predicciones critical y warning con ventas recientes.
func (uc *AnalyticsUseCase) GetStockAlerts(ctx context.Context, tenantID string, q dto.StockQuery) (*dto.StockAlertsDTO, error) {
	if err := checkStockQuery(q); err != nil {
		return nil, err
	}
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetStockAlerts: %w", err)
	}
	rows, _, _ := uc.predictStock(snap, q, uc.now())
	alerts := uc.stockAlerts(rows)
	return &alerts, nil
}

// GetLowStock productos en o bajo su stock mínimo.
func (uc *AnalyticsUseCase) GetLowStock(ctx context.Context, tenantID string) ([]dto.LowStockDTO, error) {
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetLowStock: %w", err)
	}
	return toLowStockDTOs(analytics.LowStockProducts(snap.Products)), nil
}

// ── Tendencias ────────────────────────────────────────────────────────────────

// GetWeeklyComparison últimos 7 días contra los 7 anteriores.
func (uc *AnalyticsUseCase) GetWeeklyComparison(ctx context.Context, tenantID string) (*dto.PeriodComparisonDTO, error) {
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetWeeklyComparison: %w", err)
	}
	cmp := toComparisonDTO(analytics.CompareWeeks(snap.Sales, uc.now()))
	return &cmp, nil
}

// GetMonthlyComparison últimos 30 días contra los 30 anteriores.
func (uc *AnalyticsUseCase) GetMonthlyComparison(ctx context.Context, tenantID string) (*dto.PeriodComparisonDTO, error) {
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlyComparison: %w", err)
	}
	cmp := toComparisonDTO(analytics.CompareMonths(snap.Sales, uc.now()))
	return &cmp, nil
}

// GetBusinessTrend veredicto growing/stable/declining con su intensidad.
func (uc *AnalyticsUseCase) GetBusinessTrend(ctx context.Context, tenantID string) (*dto.BusinessTrendDTO, error) {
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetBusinessTrend: %w", err)
	}
	var trend analytics.BusinessTrend
	uc.observe("trend", func() {
		trend = analytics.GetBusinessTrend(snap.Sales, uc.now())
	})
	out := toTrendDTO(trend)
	return &out, nil
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// GetDashboard todas las vistas sobre un único snapshot y un único instante.
func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context, tenantID string) (*dto.AnalyticsDashboardDTO, error) {
	snap, err := uc.loadSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDashboard: %w", err)
	}
	out := uc.dashboard(snap, 0, dto.StockQuery{}, uc.now())
	return &out, nil
}

// Evaluate corre el dashboard sobre un snapshot recibido en la petición.
func (uc *AnalyticsUseCase) Evaluate(ctx context.Context, req dto.EvaluateRequest) (*dto.AnalyticsDashboardDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkDays("days_threshold", req.DaysThreshold); err != nil {
		return nil, err
	}
	q := dto.StockQuery{LookbackDays: req.LookbackDays, LeadTimeDays: req.LeadTimeDays}
	if err := checkStockQuery(q); err != nil {
		return nil, err
	}
	now := uc.now()
	if req.Now != nil && !req.Now.IsZero() {
		now = *req.Now
	}
	uc.metrics.IncSnapshotLoad(sourceRequest)

	snap := &entity.Snapshot{Products: req.Products, Sales: req.Sales}
	out := uc.dashboard(snap, req.DaysThreshold, q, now)
	return &out, nil
}

func (uc *AnalyticsUseCase) dashboard(snap *entity.Snapshot, daysThreshold int, q dto.StockQuery, now time.Time) dto.AnalyticsDashboardDTO {
	threshold := orDefault(daysThreshold, uc.engine.Thresholds().SlowStockDays)

	var (
		rotation []analytics.ProductRotation
		profit   []analytics.ProductProfitability
		trend    analytics.BusinessTrend
	)
	uc.observe("rotation", func() {
		rotation = uc.engine.AnalyzeRotation(snap.Products, snap.Sales, threshold, now)
	})
	uc.observe("profitability", func() {
		profit = uc.engine.AnalyzeProfitability(snap.Products, snap.Sales)
	})
	uc.observe("trend", func() {
		trend = analytics.GetBusinessTrend(snap.Sales, now)
	})
	stock, lookback, lead := uc.predictStock(snap, q, now)

	return dto.AnalyticsDashboardDTO{
		GeneratedAt:   now,
		Rotation:      toRotationReport(rotation, threshold, now),
		Profitability: toProfitabilityReport(profit),
		Categories:    toCategoryDTOs(analytics.CategoryBreakdown(profit)),
		Stock:         uc.stockReport(stock, lookback, lead, now),
		Alerts:        uc.stockAlerts(stock),
		LowStock:      toLowStockDTOs(analytics.LowStockProducts(snap.Products)),
		Weekly:        toComparisonDTO(analytics.CompareWeeks(snap.Sales, now)),
		Monthly:       toComparisonDTO(analytics.CompareMonths(snap.Sales, now)),
		Trend:         toTrendDTO(trend),
	}
}

// predictStock calcula las predicciones una sola vez; el reporte y las
// alertas se derivan de las mismas filas.
func (uc *AnalyticsUseCase) predictStock(snap *entity.Snapshot, q dto.StockQuery, now time.Time) (rows []analytics.StockPrediction, lookback, lead int) {
	th := uc.engine.Thresholds()
	lookback = orDefault(q.LookbackDays, th.LookbackDays)
	lead = orDefault(q.LeadTimeDays, th.LeadTimeDays)
	uc.observe("stock", func() {
		rows = uc.engine.PredictStockLevels(snap.Products, snap.Sales, lookback, lead, now)
	})
	return rows, lookback, lead
}

func (uc *AnalyticsUseCase) stockReport(rows []analytics.StockPrediction, lookback, lead int, now time.Time) dto.StockReportDTO {
	return dto.StockReportDTO{
		GeneratedAt:  now,
		LookbackDays: lookback,
		LeadTimeDays: lead,
		Items:        toStockDTOs(rows),
	}
}

func (uc *AnalyticsUseCase) stockAlerts(rows []analytics.StockPrediction) dto.StockAlertsDTO {
	critical := analytics.FilterAlerts(rows, analytics.ReorderCritical)
	warning := analytics.FilterAlerts(rows, analytics.ReorderWarning)
	uc.metrics.AddStockAlerts(string(analytics.ReorderCritical), len(critical))
	uc.metrics.AddStockAlerts(string(analytics.ReorderWarning), len(warning))

	return dto.StockAlertsDTO{
		Critical: toStockDTOs(critical),
		Warning:  toStockDTOs(warning),
	}
}

// ── Snapshot ──────────────────────────────────────────────────────────────────

// loadSnapshot lee del caché; en miss trae productos y ventas en paralelo y
// repuebla el caché. Los errores del caché solo se loguean.
func (uc *AnalyticsUseCase) loadSnapshot(ctx context.Context, tenantID string) (*entity.Snapshot, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	log := uc.log.WithTenant(tenantID)

	snap, ok, err := uc.cache.Get(ctx, tenantID)
	if err != nil {
		log.Warn().Err(err).Msg("snapshot cache: lectura fallida, se consulta el data store")
	}
	if ok && snap != nil {
		uc.metrics.IncSnapshotLoad(sourceCache)
		return snap, nil
	}

	var (
		products []entity.Product
		sales    []entity.Sale
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.products.ListByTenant(gctx, tenantID)
		if err != nil {
			return fmt.Errorf("productos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sales, err = uc.sales.ListByTenant(gctx, tenantID)
		if err != nil {
			return fmt.Errorf("ventas: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap = &entity.Snapshot{TenantID: tenantID, Products: products, Sales: sales}
	uc.metrics.IncSnapshotLoad(sourceStore)
	log.Debug().Int("products", len(products)).Int("sales", len(sales)).Msg("snapshot cargado")

	if err := uc.cache.Set(ctx, tenantID, snap); err != nil {
		log.Warn().Err(err).Msg("snapshot cache: escritura fallida")
	}
	return snap, nil
}

func (uc *AnalyticsUseCase) observe(operation string, fn func()) {
	start := time.Now()
	fn()
	uc.metrics.ObserveAnalysis(operation, time.Since(start))
}

// ── Validación ────────────────────────────────────────────────────────────────

func checkDays(name string, v int) error {
	if v < 0 || v > maxDaysParam {
		return fmt.Errorf("%w: %s debe estar entre 0 y %d", domain.ErrInvalidInput, name, maxDaysParam)
	}
	return nil
}

func checkStockQuery(q dto.StockQuery) error {
	if err := checkDays("lookback_days", q.LookbackDays); err != nil {
		return err
	}
	return checkDays("lead_time_days", q.LeadTimeDays)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*entity.Snapshot, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, string, *entity.Snapshot) error         { return nil }
func (noopCache) Invalidate(context.Context, string) error                    { return nil }

type noopMetrics struct{}

func (noopMetrics) ObserveAnalysis(string, time.Duration) {}
func (noopMetrics) AddStockAlerts(string, int)            {}
func (noopMetrics) IncSnapshotLoad(string)                {}

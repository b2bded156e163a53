package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegapp/bodegapp-api/internal/application/dto"
	"github.com/bodegapp/bodegapp-api/internal/application/usecase"
	"github.com/bodegapp/bodegapp-api/internal/domain/analytics"
	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
	apphttp "github.com/bodegapp/bodegapp-api/internal/interfaces/http"
)

var refNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type stubProducts struct {
	items []entity.Product
	err   error
}

func (s stubProducts) ListByTenant(context.Context, string) ([]entity.Product, error) {
	return s.items, s.err
}

type stubSales struct {
	items []entity.Sale
	err   error
}

func (s stubSales) ListByTenant(context.Context, string) ([]entity.Sale, error) {
	return s.items, s.err
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func stubData() (stubProducts, stubSales) {
	return stubProducts{items: []entity.Product{
			{ID: "p1", Name: "Leche", Category: "Lácteos", CostPrice: d("3"), Stock: d("2"), MinStock: d("5")},
			{ID: "p2", Name: "Fideos", Category: "Abarrotes", CostPrice: d("1"), Stock: d("40")},
		}}, stubSales{items: []entity.Sale{{
			ID: "s1", Total: d("28"), CreatedAt: entity.NewTimestamp(refNow.Add(-6 * time.Hour)),
			Items: []entity.SaleItem{{ProductID: "p1", Quantity: d("7"), UnitPrice: d("4")}},
		}}}
}

func buildAnalyticsApp(products stubProducts, sales stubSales) *fiber.App {
	uc := usecase.NewAnalyticsUseCase(products, sales, nil, nil,
		analytics.NewEngine(analytics.DefaultThresholds()), nil,
	).WithClock(func() time.Time { return refNow })

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{AnalyticsUC: uc, JWTSecret: testJWTSecret})
	return app
}

func get(t *testing.T, app *fiber.App, url string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestAnalytics_Rotation(t *testing.T) {
	app := buildAnalyticsApp(stubData())

	resp := get(t, app, "/api/analytics/rotation?days_threshold=15")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.RotationReportDTO
	decode(t, resp, &body)
	assert.Equal(t, 15, body.Threshold)
	assert.Equal(t, dto.RotationCountsDTO{Active: 1, Dead: 1}, body.Counts)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "p2", body.Items[0].ProductID)
	assert.Equal(t, 999, body.Items[0].DaysSinceLastSale)
	assert.Nil(t, body.Items[0].LastSaleDate)
}

func TestAnalytics_QueryInvalida(t *testing.T) {
	app := buildAnalyticsApp(stubData())

	resp := get(t, app, "/api/analytics/rotation?days_threshold=abc")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp2 := get(t, app, "/api/analytics/stock?lead_time_days=-2")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	body, _ := io.ReadAll(resp2.Body)
	assert.Contains(t, string(body), "INVALID_PARAMS")
}

func TestAnalytics_StockAlerts(t *testing.T) {
	app := buildAnalyticsApp(stubData())

	resp := get(t, app, "/api/analytics/stock/alerts")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.StockAlertsDTO
	decode(t, resp, &body)
	// 7 unidades en 7 días = 1/día; stock 2 -> 2 días <= lead time 3.
	require.Len(t, body.Critical, 1)
	assert.Equal(t, "p1", body.Critical[0].ProductID)
	assert.Equal(t, "critical", body.Critical[0].ReorderStatus)
	assert.Empty(t, body.Warning)
}

func TestAnalytics_LowStockYCategorias(t *testing.T) {
	app := buildAnalyticsApp(stubData())

	resp := get(t, app, "/api/analytics/stock/low")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var low []dto.LowStockDTO
	decode(t, resp, &low)
	require.Len(t, low, 1)
	assert.True(t, low[0].Deficit.Equal(d("3")))

	resp = get(t, app, "/api/analytics/profitability/categories")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cats []dto.CategoryProfitabilityDTO
	decode(t, resp, &cats)
	require.Len(t, cats, 2)
	assert.Equal(t, "Lácteos", cats[0].Category)
	assert.True(t, cats[0].TotalProfit.Equal(d("7")))
}

func TestAnalytics_Trends(t *testing.T) {
	app := buildAnalyticsApp(stubData())

	resp := get(t, app, "/api/analytics/trends")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var trend dto.BusinessTrendDTO
	decode(t, resp, &trend)
	assert.Equal(t, "growing", trend.Trend)
	assert.Equal(t, "strong", trend.Strength)

	resp = get(t, app, "/api/analytics/trends/weekly")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var weekly dto.PeriodComparisonDTO
	decode(t, resp, &weekly)
	assert.Equal(t, 1, weekly.Current.TotalOrders)
	assert.True(t, weekly.Current.AvgTicket.Equal(d("28")))
	assert.Equal(t, 0, weekly.Previous.TotalOrders)
}

func TestAnalytics_Dashboard(t *testing.T) {
	app := buildAnalyticsApp(stubData())

	resp := get(t, app, "/api/analytics/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AnalyticsDashboardDTO
	decode(t, resp, &body)
	assert.True(t, body.GeneratedAt.Equal(refNow))
	assert.Len(t, body.Profitability.Items, 2)
	assert.Len(t, body.Stock.Items, 2)
	assert.Equal(t, "growing", body.Trend.Trend)
}

func TestAnalytics_ErrorDeRepositorioEs500(t *testing.T) {
	products, sales := stubData()
	sales.err = errors.New("timeout")
	app := buildAnalyticsApp(products, sales)

	resp := get(t, app, "/api/analytics/profitability")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.NotContains(t, string(body), "timeout")
}

func TestAnalytics_VendedorNoAccede(t *testing.T) {
	app := buildAnalyticsApp(stubData())

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil)
	req.Header.Set("Authorization", tokenForRole(t, "vendedor"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAnalytics_Evaluate(t *testing.T) {
	app := buildAnalyticsApp(stubProducts{}, stubSales{})

	payload := `{
		"now": "2026-03-15T12:00:00Z",
		"products": [{"id": "a", "name": "Pan", "cost_price": "0.5", "stock": "3"}],
		"sales": [
			{"id": "v1", "total": "10", "created_at": {"seconds": 1773489600, "nanoseconds": 0},
			 "items": [{"product_id": "a", "quantity": 10, "unit_price": 1}]},
			{"id": "v2", "total": "5", "created_at": "no-es-fecha",
			 "items": [{"product_id": "a", "quantity": 5, "unit_price": 1}]}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/evaluate", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AnalyticsDashboardDTO
	decode(t, resp, &body)

	require.Len(t, body.Rotation.Items, 1)
	// la venta con fecha inválida suma unidades pero no fecha de última venta
	assert.True(t, body.Rotation.Items[0].TotalSales.Equal(d("15")))
	assert.Equal(t, 1, body.Rotation.Items[0].DaysSinceLastSale)
	assert.Equal(t, 1, body.Weekly.Current.TotalOrders)
}

func TestAnalytics_EvaluateCuerpoInvalido(t *testing.T) {
	app := buildAnalyticsApp(stubData())

	req := httptest.NewRequest(http.MethodPost, "/api/analytics/evaluate", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

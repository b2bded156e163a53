package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bodegapp/bodegapp-api/internal/domain/analytics"
	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

func weekSales() []entity.Sale {
	return []entity.Sale{
		saleAt(refNow.Add(-1*day), "600"),
		saleAt(refNow.Add(-3*day), "400"),
		saleAt(refNow.Add(-10*day), "800"),
		saleAt(refNow.Add(-40*day), "1200"),
	}
}

func TestCompareWeeks_EscenarioMilVsOchocientos(t *testing.T) {
	cmp := analytics.CompareWeeks(weekSales(), refNow)

	assertDec(t, "1000", cmp.Current.TotalSales)
	assertDec(t, "800", cmp.Previous.TotalSales)
	assertDec(t, "25", cmp.Change.Sales)
	assertDec(t, "100", cmp.Change.Orders)
	assertDec(t, "-37.5", cmp.Change.AvgTicket)
	assert.Equal(t, refNow, cmp.Current.EndDate)
	assert.Equal(t, refNow.Add(-7*day), cmp.Current.StartDate)
	assert.Equal(t, refNow.Add(-14*day), cmp.Previous.StartDate)
}

func TestCompareWeeks_VentaEnElBordeSeCuentaUnaVez(t *testing.T) {
	sales := []entity.Sale{saleAt(refNow.Add(-7*day), "100")}

	cmp := analytics.CompareWeeks(sales, refNow)

	assert.Equal(t, 1, cmp.Current.TotalOrders)
	assert.Equal(t, 0, cmp.Previous.TotalOrders)
	assertDec(t, "100", cmp.Change.Sales)
}

func TestCompareMonths(t *testing.T) {
	cmp := analytics.CompareMonths(weekSales(), refNow)

	assertDec(t, "1800", cmp.Current.TotalSales)
	assertDec(t, "1200", cmp.Previous.TotalSales)
	assertDec(t, "50", cmp.Change.Sales)
	assert.Equal(t, refNow.Add(-60*day), cmp.Previous.StartDate)
}

func TestGetBusinessTrend_CreciendoFuerte(t *testing.T) {
	trend := analytics.GetBusinessTrend(weekSales(), refNow)

	assert.Equal(t, analytics.TrendGrowing, trend.Trend)
	assert.Equal(t, analytics.StrengthStrong, trend.Strength)
	assertDec(t, "25", trend.WeeklyChange)
	assertDec(t, "50", trend.MonthlyChange)
}

func TestGetBusinessTrend_SinVentasEsEstableYDebil(t *testing.T) {
	trend := analytics.GetBusinessTrend(nil, refNow)

	assert.Equal(t, analytics.TrendStable, trend.Trend)
	assert.Equal(t, analytics.StrengthWeak, trend.Strength)
	assertDec(t, "0", trend.WeeklyChange)
}

func TestClassifyTrend(t *testing.T) {
	cases := []struct {
		name            string
		weekly, monthly string
		trend           analytics.Trend
		strength        analytics.Strength
	}{
		{"crecimiento leve", "6", "6", analytics.TrendGrowing, analytics.StrengthWeak},
		{"crecimiento fuerte", "25", "30", analytics.TrendGrowing, analytics.StrengthStrong},
		{"caída moderada", "-12", "-15", analytics.TrendDeclining, analytics.StrengthModerate},
		{"borde 5 no crece", "5", "50", analytics.TrendStable, analytics.StrengthStrong},
		{"borde -5 no cae", "-5", "-9", analytics.TrendStable, analytics.StrengthWeak},
		{"señales opuestas", "10", "-10", analytics.TrendStable, analytics.StrengthWeak},
		{"promedio 20 es moderado", "20", "20", analytics.TrendGrowing, analytics.StrengthModerate},
		{"promedio 10.5 es moderado", "-1", "20", analytics.TrendStable, analytics.StrengthModerate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := analytics.ClassifyTrend(dec(tc.weekly), dec(tc.monthly))
			assert.Equal(t, tc.trend, got.Trend)
			assert.Equal(t, tc.strength, got.Strength)
		})
	}
}

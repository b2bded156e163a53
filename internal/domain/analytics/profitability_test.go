package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegapp/bodegapp-api/internal/domain/analytics"
	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

func TestAnalyzeProfitability_Escenario(t *testing.T) {
	p := product("P", "5", "50")
	sales := []entity.Sale{
		saleAt(refNow.Add(-day), "50", item("P", "5", "10")),
		saleAt(refNow.Add(-2*day), "50", item("P", "5", "10")),
	}

	rows := newEngine().AnalyzeProfitability([]entity.Product{p}, sales)

	require.Len(t, rows, 1)
	r := rows[0]
	assertDec(t, "100", r.TotalRevenue)
	assertDec(t, "50", r.TotalCost)
	assertDec(t, "50", r.TotalProfit)
	assertDec(t, "50", r.ProfitMargin)
	assertDec(t, "10", r.UnitsSold)
	assertDec(t, "10", r.AvgSalePrice)
	assert.Equal(t, "Abarrotes", r.Category)
	assert.Equal(t, analytics.ClassQuestionMark, r.Classification, "10 unidades no supera el corte > 10")
}

func TestAnalyzeProfitability_UnaUnidadMasEsStar(t *testing.T) {
	p := product("P", "5", "50")
	sales := []entity.Sale{saleAt(refNow, "110", item("P", "11", "10"))}

	rows := newEngine().AnalyzeProfitability([]entity.Product{p}, sales)

	assert.Equal(t, analytics.ClassStar, rows[0].Classification)
}

func TestAnalyzeProfitability_TotalDeLinea(t *testing.T) {
	withTotal := item("P", "2", "10")
	withTotal.Total = decimal.NewNullDecimal(dec("15"))
	sales := []entity.Sale{saleAt(refNow, "35", withTotal, item("P", "1", "20"))}

	rows := newEngine().AnalyzeProfitability([]entity.Product{product("P", "0", "1")}, sales)

	assertDec(t, "35", rows[0].TotalRevenue, "usa total informado y qty*precio si falta")
	assertDec(t, "0", rows[0].TotalCost, "costo ausente se toma como 0")
}

func TestAnalyzeProfitability_SinVentas(t *testing.T) {
	rows := newEngine().AnalyzeProfitability([]entity.Product{product("P", "3", "1")}, nil)

	require.Len(t, rows, 1)
	assertDec(t, "0", rows[0].ProfitMargin)
	assertDec(t, "0", rows[0].AvgSalePrice)
	assert.Equal(t, analytics.ClassDog, rows[0].Classification)
}

func TestAnalyzeProfitability_Clasificacion(t *testing.T) {
	cases := []struct {
		name  string
		units string
		cost  string
		want  analytics.Classification
	}{
		{"alto volumen y margen 30", "11", "70", analytics.ClassStar},
		{"alto volumen y margen 20 exacto", "11", "80", analytics.ClassCashCow},
		{"alto volumen y margen 15", "11", "85", analytics.ClassCashCow},
		{"alto volumen y margen 10 exacto", "11", "90", analytics.ClassCashCow},
		{"alto volumen y margen 9", "11", "91", analytics.ClassDog},
		{"bajo volumen y margen 30", "10", "70", analytics.ClassQuestionMark},
		{"bajo volumen y margen 15", "5", "85", analytics.ClassDog},
		{"margen negativo", "20", "150", analytics.ClassDog},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sales := []entity.Sale{saleAt(refNow, "0", item("P", tc.units, "100"))}
			rows := newEngine().AnalyzeProfitability([]entity.Product{product("P", tc.cost, "1")}, sales)
			assert.Equal(t, tc.want, rows[0].Classification)
		})
	}
}

func TestAnalyzeProfitability_UmbralesConfigurables(t *testing.T) {
	th := analytics.DefaultThresholds()
	th.HighVolumeUnits = dec("4")
	e := analytics.NewEngine(th)
	sales := []entity.Sale{saleAt(refNow, "0", item("P", "5", "100"))}

	rows := e.AnalyzeProfitability([]entity.Product{product("P", "50", "1")}, sales)

	assert.Equal(t, analytics.ClassStar, rows[0].Classification)
}

func TestAnalyzeProfitability_OrdenPorMargen(t *testing.T) {
	products := []entity.Product{product("bajo", "9", "1"), product("alto", "2", "1"), product("medio", "5", "1")}
	sales := []entity.Sale{saleAt(refNow, "30",
		item("bajo", "1", "10"), item("alto", "1", "10"), item("medio", "1", "10"))}

	rows := newEngine().AnalyzeProfitability(products, sales)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"alto", "medio", "bajo"}, []string{rows[0].ProductID, rows[1].ProductID, rows[2].ProductID})
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i-1].ProfitMargin.GreaterThanOrEqual(rows[i].ProfitMargin))
	}
}

func TestAverageStoreMargin(t *testing.T) {
	e := newEngine()

	assertDec(t, "0", e.AverageStoreMargin(nil, nil), "sin productos")
	assertDec(t, "0", e.AverageStoreMargin([]entity.Product{product("A", "1", "1")}, nil), "sin ventas")

	products := []entity.Product{product("A", "5", "1"), product("B", "8", "1"), product("C", "1", "1")}
	sales := []entity.Sale{saleAt(refNow, "20", item("A", "1", "10"), item("B", "1", "10"))}
	assertDec(t, "35", e.AverageStoreMargin(products, sales), "C sin ventas no diluye el promedio")
}

func TestCategoryBreakdown(t *testing.T) {
	bebidas := product("B", "1", "1")
	bebidas.Category = "Bebidas"
	sinCat := product("S", "1", "1")
	sinCat.Category = ""
	products := []entity.Product{product("A", "5", "1"), bebidas, sinCat}
	sales := []entity.Sale{saleAt(refNow, "0", item("A", "2", "10"), item("B", "10", "4"))}

	cats := analytics.CategoryBreakdown(newEngine().AnalyzeProfitability(products, sales))

	require.Len(t, cats, 3)
	assert.Equal(t, "Bebidas", cats[0].Category)
	assertDec(t, "30", cats[0].TotalProfit)
	assertDec(t, "75", cats[0].ProfitMargin)
	assert.Equal(t, "Abarrotes", cats[1].Category)
	assert.Equal(t, "Sin categoría", cats[2].Category)
	assertDec(t, "0", cats[2].ProfitMargin)
}

func TestSummarize(t *testing.T) {
	rows := []analytics.ProductProfitability{
		{Classification: analytics.ClassStar},
		{Classification: analytics.ClassStar},
		{Classification: analytics.ClassCashCow},
		{Classification: analytics.ClassDog},
	}

	s := analytics.Summarize(rows)

	assert.Equal(t, analytics.ClassificationSummary{Stars: 2, CashCows: 1, Dogs: 1}, s)
}

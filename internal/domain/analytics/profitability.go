package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// Classification cuadrante volumen/margen (estilo matriz BCG).
type Classification string

const (
	ClassStar         Classification = "star"
	ClassCashCow      Classification = "cash-cow"
	ClassQuestionMark Classification = "question-mark"
	ClassDog          Classification = "dog"
)

const uncategorized = "Sin categoría"

// ProductProfitability rentabilidad acumulada de un producto.
type ProductProfitability struct {
	ProductID      string
	ProductName    string
	TotalRevenue   decimal.Decimal
	TotalCost      decimal.Decimal // unidades * CostPrice actual
	TotalProfit    decimal.Decimal
	ProfitMargin   decimal.Decimal // % sobre ingresos; 0 sin ingresos
	UnitsSold      decimal.Decimal
	AvgSalePrice   decimal.Decimal // 0 sin unidades
	Category       string
	Classification Classification
}

// CategoryProfitability rentabilidad agregada por categoría.
type CategoryProfitability struct {
	Category     string
	Products     int
	UnitsSold    decimal.Decimal
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalProfit  decimal.Decimal
	ProfitMargin decimal.Decimal
}

// ClassificationSummary cantidad de productos por cuadrante.
type ClassificationSummary struct {
	Stars         int
	CashCows      int
	QuestionMarks int
	Dogs          int
}

// AnalyzeProfitability calcula ingresos, costo, margen y cuadrante por
// producto. Resultado ordenado de mayor a menor ProfitMargin.
func (e Engine) AnalyzeProfitability(products []entity.Product, sales []entity.Sale) []ProductProfitability {
	idx := indexSales(sales)

	rows := make([]ProductProfitability, 0, len(products))
	for _, p := range products {
		revenue, cost, units := decimal.Zero, decimal.Zero, decimal.Zero
		for _, ref := range idx[p.ID] {
			revenue = revenue.Add(ref.item.LineTotal())
			cost = cost.Add(ref.item.Quantity.Mul(p.CostPrice))
			units = units.Add(ref.item.Quantity)
		}

		profit := revenue.Sub(cost)
		margin := decimal.Zero
		if revenue.IsPositive() {
			margin = profit.Div(revenue).Mul(hundred)
		}
		avgPrice := decimal.Zero
		if units.IsPositive() {
			avgPrice = revenue.Div(units)
		}

		rows = append(rows, ProductProfitability{
			ProductID:      p.ID,
			ProductName:    p.Name,
			TotalRevenue:   revenue,
			TotalCost:      cost,
			TotalProfit:    profit,
			ProfitMargin:   margin,
			UnitsSold:      units,
			AvgSalePrice:   avgPrice,
			Category:       p.Category,
			Classification: e.classify(units, margin),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ProfitMargin.GreaterThan(rows[j].ProfitMargin)
	})
	return rows
}

// AverageStoreMargin promedio de ProfitMargin de los productos con ventas.
// Los productos sin unidades vendidas no diluyen el promedio.
func (e Engine) AverageStoreMargin(products []entity.Product, sales []entity.Sale) decimal.Decimal {
	return AverageMargin(e.AnalyzeProfitability(products, sales))
}

// AverageMargin promedio de ProfitMargin sobre filas con UnitsSold > 0.
func AverageMargin(rows []ProductProfitability) decimal.Decimal {
	sum := decimal.Zero
	n := 0
	for _, r := range rows {
		if !r.UnitsSold.IsPositive() {
			continue
		}
		sum = sum.Add(r.ProfitMargin)
		n++
	}
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n)))
}

// classify: alto volumen = UnitsSold > HighVolumeUnits.
//
//	alto + margen > High            -> star
//	alto + Medium <= margen <= High -> cash-cow
//	bajo + margen > High            -> question-mark
//	resto                           -> dog
func (e Engine) classify(units, margin decimal.Decimal) Classification {
	highVolume := units.GreaterThan(e.th.HighVolumeUnits)
	highMargin := margin.GreaterThan(e.th.HighMarginPct)
	mediumMargin := !highMargin && margin.GreaterThanOrEqual(e.th.MediumMarginPct)

	switch {
	case highVolume && highMargin:
		return ClassStar
	case highVolume && mediumMargin:
		return ClassCashCow
	case !highVolume && highMargin:
		return ClassQuestionMark
	default:
		return ClassDog
	}
}

// CategoryBreakdown agrega filas de rentabilidad por categoría, de mayor a
// menor utilidad.
func CategoryBreakdown(rows []ProductProfitability) []CategoryProfitability {
	byName := make(map[string]*CategoryProfitability)
	var order []string
	for _, r := range rows {
		name := r.Category
		if name == "" {
			name = uncategorized
		}
		c, ok := byName[name]
		if !ok {
			c = &CategoryProfitability{
				Category:     name,
				UnitsSold:    decimal.Zero,
				TotalRevenue: decimal.Zero,
				TotalCost:    decimal.Zero,
				TotalProfit:  decimal.Zero,
				ProfitMargin: decimal.Zero,
			}
			byName[name] = c
			order = append(order, name)
		}
		c.Products++
		c.UnitsSold = c.UnitsSold.Add(r.UnitsSold)
		c.TotalRevenue = c.TotalRevenue.Add(r.TotalRevenue)
		c.TotalCost = c.TotalCost.Add(r.TotalCost)
		c.TotalProfit = c.TotalProfit.Add(r.TotalProfit)
	}

	out := make([]CategoryProfitability, 0, len(order))
	for _, name := range order {
		c := byName[name]
		if c.TotalRevenue.IsPositive() {
			c.ProfitMargin = c.TotalProfit.Div(c.TotalRevenue).Mul(hundred)
		}
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalProfit.GreaterThan(out[j].TotalProfit)
	})
	return out
}

// Summarize cuenta productos por cuadrante.
func Summarize(rows []ProductProfitability) ClassificationSummary {
	var s ClassificationSummary
	for _, r := range rows {
		switch r.Classification {
		case ClassStar:
			s.Stars++
		case ClassCashCow:
			s.CashCows++
		case ClassQuestionMark:
			s.QuestionMarks++
		default:
			s.Dogs++
		}
	}
	return s
}

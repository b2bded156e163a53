package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// Trend dirección del negocio combinando variación semanal y mensual.
type Trend string

const (
	TrendGrowing   Trend = "growing"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Strength intensidad de la tendencia.
type Strength string

const (
	StrengthStrong   Strength = "strong"
	StrengthModerate Strength = "moderate"
	StrengthWeak     Strength = "weak"
)

// PeriodChange variaciones porcentuales entre dos períodos.
type PeriodChange struct {
	Sales     decimal.Decimal
	Orders    decimal.Decimal
	AvgTicket decimal.Decimal
}

// PeriodComparison período actual frente al inmediatamente anterior.
type PeriodComparison struct {
	Current  PeriodMetrics
	Previous PeriodMetrics
	Change   PeriodChange
}

// BusinessTrend veredicto cualitativo de la evolución de ventas.
type BusinessTrend struct {
	Trend         Trend
	Strength      Strength
	WeeklyChange  decimal.Decimal
	MonthlyChange decimal.Decimal
}

// ComparePeriods compara [now-days, now] contra los `days` días anteriores.
// El período previo termina 1ns antes de que empiece el actual para no contar
// dos veces una venta en el borde.
func ComparePeriods(sales []entity.Sale, now time.Time, days int) PeriodComparison {
	currentStart := windowStart(now, days)
	previousStart := windowStart(now, 2*days)

	current := CalculatePeriodMetrics(sales, currentStart, now)
	previous := CalculatePeriodMetrics(sales, previousStart, currentStart.Add(-time.Nanosecond))

	orders := PercentageChange(
		decimal.NewFromInt(int64(previous.TotalOrders)),
		decimal.NewFromInt(int64(current.TotalOrders)),
	)
	return PeriodComparison{
		Current:  current,
		Previous: previous,
		Change: PeriodChange{
			Sales:     PercentageChange(previous.TotalSales, current.TotalSales),
			Orders:    orders,
			AvgTicket: PercentageChange(previous.AvgTicket, current.AvgTicket),
		},
	}
}

// CompareWeeks últimos 7 días contra los 7 anteriores.
func CompareWeeks(sales []entity.Sale, now time.Time) PeriodComparison {
	return ComparePeriods(sales, now, weekDays)
}

// CompareMonths últimos 30 días contra los 30 anteriores.
func CompareMonths(sales []entity.Sale, now time.Time) PeriodComparison {
	return ComparePeriods(sales, now, monthDays)
}

// GetBusinessTrend clasifica la tendencia con las variaciones de ventas
// semanal y mensual.
func GetBusinessTrend(sales []entity.Sale, now time.Time) BusinessTrend {
	weekly := CompareWeeks(sales, now).Change.Sales
	monthly := CompareMonths(sales, now).Change.Sales
	return ClassifyTrend(weekly, monthly)
}

// ClassifyTrend aplica los cortes fijos: growing si ambas > 5%, declining si
// ambas < -5%; strength según el promedio de los valores absolutos.
func ClassifyTrend(weekly, monthly decimal.Decimal) BusinessTrend {
	trend := TrendStable
	switch {
	case weekly.GreaterThan(trendCut) && monthly.GreaterThan(trendCut):
		trend = TrendGrowing
	case weekly.LessThan(trendCut.Neg()) && monthly.LessThan(trendCut.Neg()):
		trend = TrendDeclining
	}

	avg := weekly.Abs().Add(monthly.Abs()).Div(decimalTwo)
	strength := StrengthWeak
	switch {
	case avg.GreaterThan(strongCut):
		strength = StrengthStrong
	case avg.GreaterThan(moderateCut):
		strength = StrengthModerate
	}

	return BusinessTrend{
		Trend:         trend,
		Strength:      strength,
		WeeklyChange:  weekly,
		MonthlyChange: monthly,
	}
}

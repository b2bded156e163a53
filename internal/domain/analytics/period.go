package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// PeriodMetrics totales de ventas en un rango de fechas.
type PeriodMetrics struct {
	TotalSales  decimal.Decimal
	TotalOrders int
	AvgTicket   decimal.Decimal // TotalSales / TotalOrders; 0 sin ventas
	StartDate   time.Time
	EndDate     time.Time
}

// CalculatePeriodMetrics suma las ventas cuya fecha válida cae en [start, end].
// Las ventas con fecha inválida se excluyen.
func CalculatePeriodMetrics(sales []entity.Sale, start, end time.Time) PeriodMetrics {
	m := PeriodMetrics{
		TotalSales: decimal.Zero,
		AvgTicket:  decimal.Zero,
		StartDate:  start,
		EndDate:    end,
	}
	for _, s := range sales {
		if !s.CreatedAt.Within(start, end) {
			continue
		}
		m.TotalSales = m.TotalSales.Add(s.Total)
		m.TotalOrders++
	}
	if m.TotalOrders > 0 {
		m.AvgTicket = m.TotalSales.Div(decimal.NewFromInt(int64(m.TotalOrders)))
	}
	return m
}

// PercentageChange variación porcentual de oldValue a newValue.
// Desde una base cero devuelve 100 si hubo crecimiento y 0 si no.
func PercentageChange(oldValue, newValue decimal.Decimal) decimal.Decimal {
	if oldValue.IsZero() {
		if newValue.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return newValue.Sub(oldValue).Div(oldValue).Mul(hundred)
}

package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// RotationStatus estado de movimiento de un producto según su última venta.
type RotationStatus string

const (
	RotationActive RotationStatus = "active"
	RotationSlow   RotationStatus = "slow"
	RotationDead   RotationStatus = "dead"
)

// ProductRotation rotación de un producto.
type ProductRotation struct {
	ProductID         string
	ProductName       string
	DaysSinceLastSale int             // NoSignalDays si nunca se vendió
	TotalSales        decimal.Decimal // unidades vendidas en todo el historial
	LastSaleDate      *time.Time
	Status            RotationStatus
}

// AnalyzeRotation clasifica cada producto por días desde su última venta:
// dead si > DeadStockDays, slow si > daysThreshold, active en otro caso.
// daysThreshold <= 0 usa Thresholds.SlowStockDays. El resultado va ordenado
// de mayor a menor DaysSinceLastSale.
func (e Engine) AnalyzeRotation(products []entity.Product, sales []entity.Sale, daysThreshold int, now time.Time) []ProductRotation {
	if daysThreshold <= 0 {
		daysThreshold = e.th.SlowStockDays
	}
	idx := indexSales(sales)

	rows := make([]ProductRotation, 0, len(products))
	for _, p := range products {
		units := decimal.Zero
		var last *time.Time
		for _, ref := range idx[p.ID] {
			units = units.Add(ref.item.Quantity)
			t, ok := ref.at.Time()
			if !ok {
				continue
			}
			if last == nil || t.After(*last) {
				tt := t
				last = &tt
			}
		}

		days := NoSignalDays
		if last != nil {
			days = daysSince(*last, now)
		}

		rows = append(rows, ProductRotation{
			ProductID:         p.ID,
			ProductName:       p.Name,
			DaysSinceLastSale: days,
			TotalSales:        units,
			LastSaleDate:      last,
			Status:            e.rotationStatus(days, daysThreshold),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DaysSinceLastSale > rows[j].DaysSinceLastSale
	})
	return rows
}

// DeadStock productos con más de `threshold` días sin venta (por defecto
// DeadStockDays). Es independiente del daysThreshold usado para "slow".
func (e Engine) DeadStock(products []entity.Product, sales []entity.Sale, threshold int, now time.Time) []ProductRotation {
	if threshold <= 0 {
		threshold = e.th.DeadStockDays
	}
	var out []ProductRotation
	for _, r := range e.AnalyzeRotation(products, sales, 0, now) {
		if r.DaysSinceLastSale > threshold {
			out = append(out, r)
		}
	}
	return nonNil(out)
}

// SlowMovingStock productos en estado slow al analizar con daysThreshold = threshold.
func (e Engine) SlowMovingStock(products []entity.Product, sales []entity.Sale, threshold int, now time.Time) []ProductRotation {
	var out []ProductRotation
	for _, r := range e.AnalyzeRotation(products, sales, threshold, now) {
		if r.Status == RotationSlow {
			out = append(out, r)
		}
	}
	return nonNil(out)
}

func (e Engine) rotationStatus(days, slowThreshold int) RotationStatus {
	switch {
	case days > e.th.DeadStockDays:
		return RotationDead
	case days > slowThreshold:
		return RotationSlow
	default:
		return RotationActive
	}
}

// daysSince días completos entre last y now; 0 si last es posterior a now.
func daysSince(last, now time.Time) int {
	d := now.Sub(last)
	if d < 0 {
		return 0
	}
	return int(d / day)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

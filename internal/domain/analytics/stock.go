package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// ReorderStatus urgencia de reposición.
type ReorderStatus string

const (
	ReorderCritical ReorderStatus = "critical"
	ReorderWarning  ReorderStatus = "warning"
	ReorderOK       ReorderStatus = "ok"
)

// StockPrediction proyección de quiebre de stock de un producto.
type StockPrediction struct {
	ProductID                string
	ProductName              string
	CurrentStock             decimal.Decimal
	SalesVelocity            decimal.Decimal // unidades/día en la ventana
	DaysUntilStockout        decimal.Decimal // NoSignalDays si la velocidad es 0
	ReorderStatus            ReorderStatus
	SuggestedReorderDate     *time.Time // nil sin velocidad
	SuggestedReorderQuantity decimal.Decimal
}

// LowStockItem producto con stock en o bajo su mínimo configurado.
type LowStockItem struct {
	ProductID   string
	ProductName string
	Category    string
	Stock       decimal.Decimal
	MinStock    decimal.Decimal
	Deficit     decimal.Decimal // MinStock - Stock
}

// PredictStockLevels estima la velocidad de venta como promedio simple de las
// unidades vendidas en [now-lookbackDays, now] y extrapola los días hasta el
// quiebre. Con leadTime L: critical si días <= L, warning si días <= 2L.
// Parámetros <= 0 usan los umbrales del motor. Resultado ordenado por
// DaysUntilStockout ascendente (más urgente primero).
func (e Engine) PredictStockLevels(products []entity.Product, sales []entity.Sale, lookbackDays, leadTimeDays int, now time.Time) []StockPrediction {
	if lookbackDays <= 0 {
		lookbackDays = e.th.LookbackDays
	}
	if leadTimeDays <= 0 {
		leadTimeDays = e.th.LeadTimeDays
	}
	idx := indexSales(sales)
	start := windowStart(now, lookbackDays)
	window := decimal.NewFromInt(int64(lookbackDays))
	lead := decimal.NewFromInt(int64(leadTimeDays))
	warnLead := lead.Mul(decimal.NewFromInt(int64(e.th.WarningLeadMultiplier)))
	cover := decimal.NewFromInt(int64(e.th.ReorderCoverDays))

	rows := make([]StockPrediction, 0, len(products))
	for _, p := range products {
		sold := decimal.Zero
		for _, ref := range idx[p.ID] {
			if ref.at.Within(start, now) {
				sold = sold.Add(ref.item.Quantity)
			}
		}
		velocity := sold.Div(window)

		// Sin ventas, days queda en el centinela y los cortes comparan 999
		// contra L. Con ventas, los cortes y el pedido se calculan sobre
		// sold y window, no sobre la velocidad ya redondeada.
		days := noSignal
		qty := decimal.Zero
		var reorderAt *time.Time
		stockDays, critCut, warnCut := days, lead, warnLead
		if sold.IsPositive() {
			stockDays = p.Stock.Mul(window)
			critCut = lead.Mul(sold)
			warnCut = warnLead.Mul(sold)
			days = stockDays.Div(sold)
			t := addDays(now, days.Sub(lead))
			reorderAt = &t
			qty = ceilDiv(sold.Mul(cover), window)
		}

		status := ReorderOK
		switch {
		case stockDays.LessThanOrEqual(critCut):
			status = ReorderCritical
		case stockDays.LessThanOrEqual(warnCut):
			status = ReorderWarning
		}

		rows = append(rows, StockPrediction{
			ProductID:                p.ID,
			ProductName:              p.Name,
			CurrentStock:             p.Stock,
			SalesVelocity:            velocity,
			DaysUntilStockout:        days,
			ReorderStatus:            status,
			SuggestedReorderDate:     reorderAt,
			SuggestedReorderQuantity: qty,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DaysUntilStockout.LessThan(rows[j].DaysUntilStockout)
	})
	return rows
}

// CriticalStockAlerts predicciones critical con velocidad > 0.
func (e Engine) CriticalStockAlerts(products []entity.Product, sales []entity.Sale, leadTimeDays int, now time.Time) []StockPrediction {
	return FilterAlerts(e.PredictStockLevels(products, sales, 0, leadTimeDays, now), ReorderCritical)
}

// WarningStockAlerts predicciones warning con velocidad > 0.
func (e Engine) WarningStockAlerts(products []entity.Product, sales []entity.Sale, leadTimeDays int, now time.Time) []StockPrediction {
	return FilterAlerts(e.PredictStockLevels(products, sales, 0, leadTimeDays, now), ReorderWarning)
}

// ceilDiv techo exacto de a/b para a >= 0 y b > 0.
func ceilDiv(a, b decimal.Decimal) decimal.Decimal {
	q, r := a.QuoRem(b, 0)
	if r.IsPositive() {
		q = q.Add(decimal.NewFromInt(1))
	}
	return q
}

// FilterAlerts filtra predicciones ya calculadas por estado y descarta
// productos sin ventas recientes aunque su stock sea 0: sin velocidad no hay
// señal sobre la cual reponer.
func FilterAlerts(rows []StockPrediction, status ReorderStatus) []StockPrediction {
	out := []StockPrediction{}
	for _, r := range rows {
		if r.ReorderStatus == status && r.SalesVelocity.IsPositive() {
			out = append(out, r)
		}
	}
	return out
}

// LowStockProducts productos con MinStock > 0 y Stock <= MinStock, ordenados
// por stock ascendente.
func LowStockProducts(products []entity.Product) []LowStockItem {
	out := []LowStockItem{}
	for _, p := range products {
		if !p.MinStock.IsPositive() || p.Stock.GreaterThan(p.MinStock) {
			continue
		}
		out = append(out, LowStockItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Category:    p.Category,
			Stock:       p.Stock,
			MinStock:    p.MinStock,
			Deficit:     p.MinStock.Sub(p.Stock),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stock.LessThan(out[j].Stock)
	})
	return out
}

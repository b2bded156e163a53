package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// Engine aplica los analizadores con un juego fijo de umbrales.
// Es un valor inmutable: puede compartirse entre goroutines.
type Engine struct {
	th Thresholds
}

// NewEngine construye el motor. Usar DefaultThresholds() si no hay configuración.
func NewEngine(th Thresholds) Engine {
	return Engine{th: th}
}

// Thresholds devuelve los umbrales con los que opera el motor.
func (e Engine) Thresholds() Thresholds {
	return e.th
}

const day = 24 * time.Hour

// lineRef es una línea de venta con la fecha de su venta.
type lineRef struct {
	item entity.SaleItem
	at   entity.Timestamp
}

// salesIndex agrupa las líneas de venta por ProductID. Se construye una vez
// por llamada para no recorrer todas las ventas por cada producto.
type salesIndex map[string][]lineRef

func indexSales(sales []entity.Sale) salesIndex {
	idx := make(salesIndex)
	for _, s := range sales {
		for _, it := range s.Items {
			idx[it.ProductID] = append(idx[it.ProductID], lineRef{item: it, at: s.CreatedAt})
		}
	}
	return idx
}

// addDays suma días fraccionarios a t sin desbordar time.Duration.
func addDays(t time.Time, days decimal.Decimal) time.Time {
	whole := days.Truncate(0)
	frac := days.Sub(whole)
	out := t.AddDate(0, 0, int(whole.IntPart()))
	return out.Add(time.Duration(frac.Mul(decimal.NewFromInt(int64(day))).IntPart()))
}

// windowStart devuelve now - days*24h.
func windowStart(now time.Time, days int) time.Time {
	return now.Add(-time.Duration(days) * day)
}

// Package analytics contiene el motor de analítica minorista: rotación de
// inventario, rentabilidad (clasificación tipo BCG), predicción de quiebre de
// stock y comparación temporal de ventas.
//
// Todas las funciones son puras: reciben productos, ventas, umbrales y la
// fecha de referencia (now) y devuelven registros derivados nuevos. No guardan
// estado entre llamadas ni modifican sus argumentos.
package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/domain"
)

// NoSignalDays centinela para "nunca vendido" y "sin quiebre a la vista".
// Las alertas dependen de este valor exacto.
const NoSignalDays = 999

// Constantes fijas de tendencia (no configurables).
const (
	TrendThresholdPct = 5  // |Δ| mínimo para growing/declining
	StrongTrendPct    = 20 // promedio |Δ| para strength=strong
	ModerateTrendPct  = 10 // promedio |Δ| para strength=moderate

	weekDays  = 7
	monthDays = 30
)

var (
	hundred     = decimal.NewFromInt(100)
	noSignal    = decimal.NewFromInt(NoSignalDays)
	trendCut    = decimal.NewFromInt(TrendThresholdPct)
	strongCut   = decimal.NewFromInt(StrongTrendPct)
	moderateCut = decimal.NewFromInt(ModerateTrendPct)
	decimalTwo  = decimal.NewFromInt(2)
)

// Thresholds agrupa los cortes de clasificación compartidos por los analizadores.
//
// HighVolumeUnits es un corte estricto: un producto con exactamente 10
// unidades vendidas es de bajo volumen y nunca llega a star.
type Thresholds struct {
	DeadStockDays         int             // días sin venta para "dead" (60)
	SlowStockDays         int             // daysThreshold por defecto para "slow" (30)
	HighVolumeUnits       decimal.Decimal // unitsSold > X = alto volumen (10); 10 exactas es bajo volumen
	HighMarginPct         decimal.Decimal // margen > X = alto (20)
	MediumMarginPct       decimal.Decimal // margen >= X = medio (10)
	LookbackDays          int             // ventana de velocidad por defecto (7)
	LeadTimeDays          int             // tiempo de reposición por defecto (3)
	WarningLeadMultiplier int             // warning si días <= X * leadTime (2)
	ReorderCoverDays      int             // días de demanda que cubre el pedido sugerido (14)
}

// DefaultThresholds devuelve los valores históricos de la aplicación.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DeadStockDays:         60,
		SlowStockDays:         30,
		HighVolumeUnits:       decimal.NewFromInt(10),
		HighMarginPct:         decimal.NewFromInt(20),
		MediumMarginPct:       decimal.NewFromInt(10),
		LookbackDays:          7,
		LeadTimeDays:          3,
		WarningLeadMultiplier: 2,
		ReorderCoverDays:      14,
	}
}

// Validate rechaza umbrales no positivos o bandas de margen invertidas.
func (t Thresholds) Validate() error {
	ints := []struct {
		name string
		v    int
	}{
		{"dead_stock_days", t.DeadStockDays},
		{"slow_stock_days", t.SlowStockDays},
		{"lookback_days", t.LookbackDays},
		{"lead_time_days", t.LeadTimeDays},
		{"warning_lead_multiplier", t.WarningLeadMultiplier},
		{"reorder_cover_days", t.ReorderCoverDays},
	}
	for _, f := range ints {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s debe ser mayor a 0", domain.ErrInvalidInput, f.name)
		}
	}
	if t.HighVolumeUnits.IsNegative() {
		return fmt.Errorf("%w: high_volume_units no puede ser negativo", domain.ErrInvalidInput)
	}
	if t.MediumMarginPct.GreaterThan(t.HighMarginPct) {
		return fmt.Errorf("%w: medium_margin_pct no puede superar high_margin_pct", domain.ErrInvalidInput)
	}
	return nil
}

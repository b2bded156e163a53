package entity

import "github.com/shopspring/decimal"

// Product representa un producto de la bodega (solo lectura para la analítica).
// CostPrice y MinStock ausentes se leen como cero; Stock >= 0 se asume pero no se valida.
type Product struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	CostPrice decimal.Decimal `json:"cost_price"` // costo unitario
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"min_stock"` // 0 = sin umbral de stock mínimo
}

package entity

import "github.com/shopspring/decimal"

// Sale representa una venta registrada (inmutable). Items lleva las líneas anidadas.
type Sale struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Items     []SaleItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt Timestamp       `json:"created_at"`
}

// SaleItem línea de venta. ProductName es una copia al momento de la venta y
// puede diferir del nombre actual del producto. Quantity admite fracciones
// (productos vendidos a granel).
type SaleItem struct {
	ProductID   string              `json:"product_id"`
	ProductName string              `json:"product_name"`
	Quantity    decimal.Decimal     `json:"quantity"`
	UnitPrice   decimal.Decimal     `json:"unit_price"`
	Total       decimal.NullDecimal `json:"total"` // puede venir vacío
}

// LineTotal devuelve Total si viene informado; si no, Quantity * UnitPrice.
func (i SaleItem) LineTotal() decimal.Decimal {
	if i.Total.Valid {
		return i.Total.Decimal
	}
	return i.Quantity.Mul(i.UnitPrice)
}

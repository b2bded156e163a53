package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bodegapp/bodegapp-api/internal/domain/analytics"
	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// Fecha de referencia fija para que los cálculos sean reproducibles.
var refNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"esperado %s, obtenido %s", want, got.String()}, msgAndArgs...)...)
}

func product(id string, cost, stock string) entity.Product {
	return entity.Product{
		ID:        id,
		TenantID:  "tenant-1",
		Name:      "Producto " + id,
		Category:  "Abarrotes",
		CostPrice: dec(cost),
		Stock:     dec(stock),
	}
}

func item(productID string, qty, price string) entity.SaleItem {
	return entity.SaleItem{
		ProductID:   productID,
		ProductName: "Producto " + productID,
		Quantity:    dec(qty),
		UnitPrice:   dec(price),
	}
}

func saleAt(at time.Time, total string, items ...entity.SaleItem) entity.Sale {
	return entity.Sale{
		ID:        at.Format(time.RFC3339Nano),
		TenantID:  "tenant-1",
		Items:     items,
		Total:     dec(total),
		CreatedAt: entity.NewTimestamp(at),
	}
}

func newEngine() analytics.Engine {
	return analytics.NewEngine(analytics.DefaultThresholds())
}

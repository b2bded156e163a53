package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
	"github.com/bodegapp/bodegapp-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo lectura de ventas sobre PostgreSQL. Las líneas viven en la columna
// sales.items (jsonb) tal como las guarda el punto de venta.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de lectura de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// saleItemRow forma de cada línea en sales.items (camelCase del frontend).
type saleItemRow struct {
	ProductID   string              `json:"productId"`
	ProductName string              `json:"productName"`
	Quantity    decimal.Decimal     `json:"quantity"`
	UnitPrice   decimal.Decimal     `json:"unitPrice"`
	Total       decimal.NullDecimal `json:"total"`
}

// ListByTenant devuelve todas las ventas del tenant con sus líneas.
// created_at nulo deja la fecha inválida; la analítica la excluye de los períodos.
func (r *SaleRepo) ListByTenant(ctx context.Context, tenantID string) ([]entity.Sale, error) {
	const query = `
	SELECT
	    s.id,
	    s.tenant_id,
	    COALESCE(s.total, 0)           AS total,
	    s.created_at,
	    COALESCE(s.items, '[]'::jsonb) AS items
	FROM sales s
	WHERE s.tenant_id = $1
	ORDER BY s.created_at`

	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("sales.ListByTenant: %w", err)
	}
	defer rows.Close()

	sales := []entity.Sale{}
	for rows.Next() {
		var (
			s         entity.Sale
			createdAt *time.Time
			rawItems  []byte
		)
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Total, &createdAt, &rawItems); err != nil {
			return nil, fmt.Errorf("sales.ListByTenant scan: %w", err)
		}
		s.CreatedAt = entity.NormalizeTimestamp(createdAt)
		items, err := decodeItems(rawItems)
		if err != nil {
			return nil, fmt.Errorf("sales.ListByTenant venta %s: %w", s.ID, err)
		}
		s.Items = items
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales.ListByTenant rows: %w", err)
	}
	return sales, nil
}

// decodeItems convierte el jsonb de líneas al modelo de dominio.
func decodeItems(raw []byte) ([]entity.SaleItem, error) {
	if len(raw) == 0 {
		return []entity.SaleItem{}, nil
	}
	var rows []saleItemRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decodificar items: %w", err)
	}
	items := make([]entity.SaleItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, entity.SaleItem{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			Total:       r.Total,
		})
	}
	return items, nil
}

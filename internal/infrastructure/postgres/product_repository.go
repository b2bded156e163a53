package postgres

import (
	"context"
	"fmt"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
	"github.com/bodegapp/bodegapp-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura de productos sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de lectura de productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListByTenant devuelve todos los productos del tenant. Costo y stock mínimo
// nulos se leen como 0.
func (r *ProductRepo) ListByTenant(ctx context.Context, tenantID string) ([]entity.Product, error) {
	const query = `
	SELECT
	    p.id,
	    p.tenant_id,
	    p.name,
	    COALESCE(p.category,   '') AS category,
	    COALESCE(p.cost_price, 0)  AS cost_price,
	    COALESCE(p.stock,      0)  AS stock,
	    COALESCE(p.min_stock,  0)  AS min_stock
	FROM products p
	WHERE p.tenant_id = $1
	ORDER BY p.name`

	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("products.ListByTenant: %w", err)
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID,
			&p.TenantID,
			&p.Name,
			&p.Category,
			&p.CostPrice,
			&p.Stock,
			&p.MinStock,
		); err != nil {
			return nil, fmt.Errorf("products.ListByTenant scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products.ListByTenant rows: %w", err)
	}
	return products, nil
}

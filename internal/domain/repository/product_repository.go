package repository

import (
	"context"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// ProductRepository puerto de lectura de productos de un tenant.
// El data store externo aplica el aislamiento por tenant; aquí solo se filtra.
type ProductRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]entity.Product, error)
}

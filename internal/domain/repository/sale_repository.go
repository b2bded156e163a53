package repository

import (
	"context"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// SaleRepository puerto de lectura de ventas de un tenant, con sus líneas anidadas.
type SaleRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]entity.Sale, error)
}

package ports

import (
	"context"
	"time"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
)

// SnapshotCache guarda el snapshot (productos + ventas) de un tenant por un TTL.
// Un fallo del caché nunca debe impedir el cálculo: el caso de uso lee del data store.
type SnapshotCache interface {
	Get(ctx context.Context, tenantID string) (*entity.Snapshot, bool, error)
	Set(ctx context.Context, tenantID string, snap *entity.Snapshot) error
	Invalidate(ctx context.Context, tenantID string) error
}

// AnalyticsMetrics registra la duración de los análisis y las alertas emitidas.
type AnalyticsMetrics interface {
	ObserveAnalysis(operation string, d time.Duration)
	AddStockAlerts(status string, n int)
	IncSnapshotLoad(source string)
}

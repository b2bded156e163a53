package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
	"github.com/bodegapp/bodegapp-api/pkg/config"
)

func TestBuildRedisOptions_URL(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{RedisURL: "redis://:secreto@cache.local:6380/2"})
	require.NoError(t, err)
	assert.Equal(t, "cache.local:6380", opts.Addr)
	assert.Equal(t, "secreto", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestBuildRedisOptions_HostPort(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{Host: "redis", Port: 6379, DB: 1})
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", opts.Addr)
	assert.Equal(t, 1, opts.DB)

	opts, err = buildRedisOptions(config.CacheConfig{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)
}

func TestBuildRedisOptions_URLInvalida(t *testing.T) {
	_, err := buildRedisOptions(config.CacheConfig{RedisURL: "http://no-es-redis"})
	assert.Error(t, err)
}

func TestSnapshotTTL(t *testing.T) {
	assert.Equal(t, time.Minute, snapshotTTL(config.CacheConfig{}))
	assert.Equal(t, 5*time.Second, snapshotTTL(config.CacheConfig{SnapshotTTL: 5 * time.Second}))
}

func TestNewSnapshotCache_DeshabilitadoEsNoop(t *testing.T) {
	c, err := NewSnapshotCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "t-1", &entity.Snapshot{}))
	snap, ok, err := c.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snap)
	assert.NoError(t, c.Invalidate(ctx, "t-1"))
}

func TestDecodeSnapshot_ConservaFechasYDecimales(t *testing.T) {
	at := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	in := entity.Snapshot{
		TenantID: "t-1",
		Products: []entity.Product{{ID: "p1", Name: "Arroz", CostPrice: decimal.RequireFromString("3.25"), Stock: decimal.NewFromInt(4)}},
		Sales: []entity.Sale{{
			ID:        "s1",
			CreatedAt: entity.NewTimestamp(at),
			Items:     []entity.SaleItem{{ProductID: "p1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("4.5")}},
		}},
	}
	payload, err := json.Marshal(in)
	require.NoError(t, err)

	out, err := decodeSnapshot(payload)
	require.NoError(t, err)

	assert.Equal(t, "t-1", out.TenantID)
	assert.True(t, out.Products[0].CostPrice.Equal(decimal.RequireFromString("3.25")))
	got, ok := out.Sales[0].CreatedAt.Time()
	require.True(t, ok)
	assert.True(t, got.Equal(at))
	assert.True(t, out.Sales[0].Items[0].LineTotal().Equal(decimal.NewFromInt(9)))
}

func TestDecodeSnapshot_Corrupto(t *testing.T) {
	_, err := decodeSnapshot([]byte("{"))
	assert.Error(t, err)
}

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "analytics:snapshot:t-1", snapshotKey("t-1"))
}

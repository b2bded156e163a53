package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bodegapp/bodegapp-api/internal/application/ports"
	"github.com/bodegapp/bodegapp-api/internal/domain/entity"
	"github.com/bodegapp/bodegapp-api/pkg/config"
)

const snapshotKeyPrefix = "analytics:snapshot:"

type redisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopSnapshotCache struct{}

// NewSnapshotCache devuelve el caché en Redis o uno no-op si está deshabilitado.
func NewSnapshotCache(cfg config.CacheConfig) (ports.SnapshotCache, error) {
	if !cfg.Enabled {
		return NewNoopSnapshotCache(), nil
	}
	client, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return &redisSnapshotCache{client: client, ttl: snapshotTTL(cfg)}, nil
}

func NewNoopSnapshotCache() ports.SnapshotCache {
	return noopSnapshotCache{}
}

func snapshotKey(tenantID string) string {
	return snapshotKeyPrefix + tenantID
}

func (c *redisSnapshotCache) Get(ctx context.Context, tenantID string) (*entity.Snapshot, bool, error) {
	payload, err := c.client.Get(ctx, snapshotKey(tenantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}
	snap, err := decodeSnapshot(payload)
	if err != nil {
		// entrada corrupta: se trata como miss y se reemplaza en el próximo Set
		_ = c.client.Del(ctx, snapshotKey(tenantID)).Err()
		return nil, false, err
	}
	return snap, true, nil
}

func (c *redisSnapshotCache) Set(ctx context.Context, tenantID string, snap *entity.Snapshot) error {
	if snap == nil {
		return nil
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey(tenantID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisSnapshotCache) Invalidate(ctx context.Context, tenantID string) error {
	if err := c.client.Del(ctx, snapshotKey(tenantID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func decodeSnapshot(payload []byte) (*entity.Snapshot, error) {
	var snap entity.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

func (noopSnapshotCache) Get(context.Context, string) (*entity.Snapshot, bool, error) {
	return nil, false, nil
}

func (noopSnapshotCache) Set(context.Context, string, *entity.Snapshot) error { return nil }

func (noopSnapshotCache) Invalidate(context.Context, string) error { return nil }

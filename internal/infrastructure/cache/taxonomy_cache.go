// Package cache provides the Redis-backed caches.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apptaxonomy "github.com/localmarket/backend/internal/application/taxonomy"
)

const typeListKey = "taxonomy:types:active"

// RedisTaxonomyCache caches the active shop type list in Redis. Cache
// failures degrade to a miss; the registry stays the source of truth.
type RedisTaxonomyCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisTaxonomyCache creates a new RedisTaxonomyCache
func NewRedisTaxonomyCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisTaxonomyCache {
	return &RedisTaxonomyCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetTypeList returns the cached active type list, if present
func (c *RedisTaxonomyCache) GetTypeList(ctx context.Context) ([]apptaxonomy.ShopTypeResponse, bool) {
	raw, err := c.client.Get(ctx, typeListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("taxonomy cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var items []apptaxonomy.ShopTypeResponse
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("taxonomy cache payload corrupt, dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return items, true
}

// SetTypeList stores the active type list with the configured TTL
func (c *RedisTaxonomyCache) SetTypeList(ctx context.Context, items []apptaxonomy.ShopTypeResponse) {
	raw, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn("taxonomy cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, typeListKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("taxonomy cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached type list
func (c *RedisTaxonomyCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, typeListKey).Err(); err != nil {
		c.logger.Warn("taxonomy cache invalidation failed", zap.Error(err))
	}
}

var _ apptaxonomy.ListCache = (*RedisTaxonomyCache)(nil)

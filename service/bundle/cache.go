package bundle

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bundle-inventory.GO/core/cache"
)

const (
	cacheKeyPrefix = "bundle:structure:"
	cacheTag       = "bundle_structure"
)

// StructureCache stores bundle structures by SKU. Source assignments are never cached.
type StructureCache interface {
	Get(ctx context.Context, sku string) (*Product, bool)
	Set(ctx context.Context, p *Product)
	Invalidate(ctx context.Context, sku string)
}

// NewStructureCache returns a Redis backed cache when client is set and one
// backed by local otherwise. A zero ttl disables caching.
func NewStructureCache(client *redis.Client, local *cache.Cache, ttl time.Duration, log *zap.Logger) StructureCache {
	if ttl <= 0 {
		return noCache{}
	}
	if client != nil {
		if log == nil {
			log = zap.NewNop()
		}
		return &redisCache{client: client, ttl: ttl, log: log}
	}
	if local == nil {
		local = cache.NewCache()
	}
	return &localCache{c: local, ttl: ttl}
}

type noCache struct{}

func (noCache) Get(context.Context, string) (*Product, bool) { return nil, false }
func (noCache) Set(context.Context, *Product)                {}
func (noCache) Invalidate(context.Context, string)           {}

type localCache struct {
	c   *cache.Cache
	ttl time.Duration
}

func (l *localCache) Get(_ context.Context, sku string) (*Product, bool) {
	v, ok := l.c.Get(cacheKeyPrefix + sku)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Product)
	return p, ok
}

func (l *localCache) Set(_ context.Context, p *Product) {
	l.c.Set(cacheKeyPrefix+p.SKU, p, l.ttl, []string{cacheTag})
}

func (l *localCache) Invalidate(_ context.Context, sku string) {
	l.c.Delete(cacheKeyPrefix + sku)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func (r *redisCache) Get(ctx context.Context, sku string) (*Product, bool) {
	raw, err := r.client.Get(ctx, cacheKeyPrefix+sku).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("bundle cache read failed", zap.String("bundle_sku", sku), zap.Error(err))
		}
		return nil, false
	}
	var p Product
	if err := json.Unmarshal(raw, &p); err != nil {
		r.log.Warn("bundle cache entry corrupt", zap.String("bundle_sku", sku), zap.Error(err))
		return nil, false
	}
	return &p, true
}

func (r *redisCache) Set(ctx context.Context, p *Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, cacheKeyPrefix+p.SKU, raw, r.ttl).Err(); err != nil {
		r.log.Warn("bundle cache write failed", zap.String("bundle_sku", p.SKU), zap.Error(err))
	}
}

func (r *redisCache) Invalidate(ctx context.Context, sku string) {
	if err := r.client.Del(ctx, cacheKeyPrefix+sku).Err(); err != nil {
		r.log.Warn("bundle cache invalidation failed", zap.String("bundle_sku", sku), zap.Error(err))
	}
}

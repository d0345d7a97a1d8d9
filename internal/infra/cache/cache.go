// Package cache provides service.Cache backends: redis for shared deployments and an
// in-process store for single instances and tests.
package cache

import (
	"context"
	"log/slog"
	"time"

	"venture/config"
	"venture/internal/domain/constants"
	"venture/internal/domain/lifecycle"
	"venture/internal/domain/service"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultCleanupInterval = 10 * time.Minute

// Params holds dependencies for the cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the configured cache backend
func New(params Params) (service.Cache, error) {
	cfg := params.Config.Cache
	if cfg == nil {
		cfg = &config.CacheConfig{}
	}

	switch cfg.Provider {
	case "", constants.CacheProviderMemory:
		params.Logger.Info("Using in-memory cache")

		return NewMemoryCache(cfg.CleanupInterval), nil

	case constants.CacheProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}
				params.Logger.Info("Redis cache connected", slog.String("addr", cfg.Redis.Addr))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisCache(client), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}

// memoryCache implements service.Cache with go-cache.
type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-process cache. Expired entries are purged every cleanupInterval.
func NewMemoryCache(cleanupInterval time.Duration) service.Cache {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}

	return &memoryCache{store: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := c.store.Get(key)
	if !ok {
		return nil, service.ErrCacheMiss
	}

	raw, ok := value.([]byte)
	if !ok {
		return nil, service.ErrCacheMiss
	}

	return raw, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)

	return nil
}

// redisCache implements service.Cache on top of a redis client.
type redisCache struct {
	client redis.Cmdable
}

// NewRedisCache wraps a redis client.
func NewRedisCache(client redis.Cmdable) service.Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "redis get")
	}

	return raw, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

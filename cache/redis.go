package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"travelplanner/config"
)

// RedisCache stores upstream lookups in Redis under "cache:{type}:{key}".
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.CacheConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}),
	}
}

func (c *RedisCache) Get(ctx context.Context, key, dataType string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, entryKey(key, dataType)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, dataType string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, entryKey(key, dataType), data, ttl).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func entryKey(key, dataType string) string {
	return "cache:" + dataType + ":" + key
}

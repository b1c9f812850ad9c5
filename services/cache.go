package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"travelplanner/logger"
)

// Cache stores raw upstream lookups. Implemented by the api_cache table and
// by Redis.
type Cache interface {
	Get(ctx context.Context, key, dataType string) ([]byte, bool, error)
	Set(ctx context.Context, key, dataType string, data []byte, ttl time.Duration) error
}

const (
	cacheTypeLocations = "locations"
	cacheTypeCityCode  = "city_code"
)

func cacheKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func (c *AmadeusClient) cacheGet(ctx context.Context, key, dataType string, v any) bool {
	if c.cache == nil {
		return false
	}
	data, ok, err := c.cache.Get(ctx, cacheKey(key), dataType)
	if err != nil {
		c.logger.Warn("Cache read failed", logger.String("type", dataType), logger.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		c.logger.Warn("Cached entry is corrupt", logger.String("type", dataType), logger.Error(err))
		return false
	}
	return true
}

func (c *AmadeusClient) cacheSet(ctx context.Context, key, dataType string, v any) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey(key), dataType, data, c.cacheTTL); err != nil {
		c.logger.Warn("Cache write failed", logger.String("type", dataType), logger.Error(err))
	}
}

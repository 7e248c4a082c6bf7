package cache

import (
	"context"
	"errors"

	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/pkg/redis"
)

const (
	// ForecastCacheName prefixes every forecast key and names its TTL entry
	ForecastCacheName = "forecast"
	forecastCacheKey  = "four-day"
)

type redisForecastCache struct {
	cache *redis.Cache
}

// NewRedisForecastCache stores the forecast as JSON under forecast::four-day
func NewRedisForecastCache(client *redis.Client) ForecastCache {
	return &redisForecastCache{
		cache: redis.NewCache(client, redis.NewCacheOptions().WithCacheName(ForecastCacheName)),
	}
}

func (r *redisForecastCache) Get(ctx context.Context) (entity.ForecastSet, bool, error) {
	var forecast entity.ForecastSet
	if err := r.cache.Get(ctx, forecastCacheKey, &forecast); err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(forecast) == 0 {
		return nil, false, nil
	}
	return forecast, true, nil
}

func (r *redisForecastCache) Set(ctx context.Context, forecast entity.ForecastSet) error {
	return r.cache.Set(ctx, forecastCacheKey, forecast)
}

func (r *redisForecastCache) Enabled() bool {
	return true
}

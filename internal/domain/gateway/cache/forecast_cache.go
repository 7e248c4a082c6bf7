package cache

import (
	"context"

	"beach-cleanup/internal/domain/entity"
)

// ForecastCache stores the last normalized live forecast
type ForecastCache interface {
	// Get returns the cached set and true, or false on a miss
	Get(ctx context.Context) (entity.ForecastSet, bool, error)
	// Set replaces the cached set
	Set(ctx context.Context, forecast entity.ForecastSet) error
	// Enabled reports whether reads can ever hit
	Enabled() bool
}

type noopForecastCache struct{}

// NewNoopForecastCache returns a cache that never stores anything
func NewNoopForecastCache() ForecastCache {
	return noopForecastCache{}
}

func (noopForecastCache) Get(context.Context) (entity.ForecastSet, bool, error) {
	return nil, false, nil
}

func (noopForecastCache) Set(context.Context, entity.ForecastSet) error {
	return nil
}

func (noopForecastCache) Enabled() bool {
	return false
}

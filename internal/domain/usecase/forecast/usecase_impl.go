package forecast

import (
	"context"
	"fmt"
	"sync"
	"time"

	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/gateway/api"
	"beach-cleanup/internal/domain/gateway/cache"
	"beach-cleanup/pkg/log"
	"beach-cleanup/pkg/msg"

	"go.uber.org/zap"
)

// Outcome is the result of the most recent upstream call.
type Outcome struct {
	At       time.Time
	Failure  string
	Periods  int
	Attempts int
}

type forecastUseCase struct {
	apiGateway api.ForecastGateway
	cache      cache.ForecastCache
	now        func() time.Time

	mu      sync.RWMutex
	outcome Outcome
}

// NewForecastUseCase wires the upstream gateway and the cache. A nil cache disables caching.
func NewForecastUseCase(apiGateway api.ForecastGateway, forecastCache cache.ForecastCache) UseCase {
	if forecastCache == nil {
		forecastCache = cache.NewNoopForecastCache()
	}
	return &forecastUseCase{
		apiGateway: apiGateway,
		cache:      forecastCache,
		now:        time.Now,
	}
}

// Load returns the cached live forecast when present, otherwise fetches it
func (uc *forecastUseCase) Load(ctx context.Context) (entity.ForecastSet, error) {
	if uc.cache.Enabled() {
		cached, hit, err := uc.cache.Get(ctx)
		if err != nil {
			log.Warn(msg.GetMessage("forecast.cache-read-failed", err), zap.Error(err))
		}
		if hit {
			log.Debug(msg.GetMessage("forecast.cache-hit"))
			return cached, nil
		}
	}

	return uc.fetch(ctx)
}

// Refresh fetches the live forecast ignoring any cached copy
func (uc *forecastUseCase) Refresh(ctx context.Context) error {
	_, err := uc.fetch(ctx)
	return err
}

// fetch performs one upstream call, normalizes the body and caches live data
func (uc *forecastUseCase) fetch(ctx context.Context) (entity.ForecastSet, error) {
	log.Debug(msg.GetMessage("forecast.load-start"))

	body, err := uc.apiGateway.FetchForecast(ctx)
	if err != nil {
		uc.record(nil, err)
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	forecast, err := Normalize(body)
	if err != nil {
		uc.record(nil, err)
		return nil, fmt.Errorf("failed to normalize forecast: %w", err)
	}

	uc.record(forecast, nil)
	log.Info(msg.GetMessage("forecast.loaded", len(forecast), "upstream"), zap.Int("periods", len(forecast)))

	if uc.cache.Enabled() {
		if err := uc.cache.Set(ctx, forecast); err != nil {
			log.Warn(msg.GetMessage("forecast.cache-write-failed", err), zap.Error(err))
		}
	}

	return forecast, nil
}

// Fallback synthesizes the fixed forecast starting today
func (uc *forecastUseCase) Fallback() entity.ForecastSet {
	return MockForecast(uc.now())
}

// LastOutcome reports the result of the most recent upstream call
func (uc *forecastUseCase) LastOutcome() Outcome {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.outcome
}

func (uc *forecastUseCase) record(forecast entity.ForecastSet, err error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.outcome = Outcome{
		At:       uc.now(),
		Failure:  FailureKind(err),
		Periods:  len(forecast),
		Attempts: uc.outcome.Attempts + 1,
	}
}

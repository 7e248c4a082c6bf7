package health

import (
	"context"
	"strconv"
	"time"

	"beach-cleanup/internal/domain/model"
	"beach-cleanup/internal/domain/usecase/forecast"
	"beach-cleanup/pkg/redis"
)

// CacheChecker reports the state of the forecast cache backend
type CacheChecker interface {
	HealthCheck(ctx context.Context) redis.HealthCheck
}

type healthUseCase struct {
	cacheChecker    CacheChecker
	forecastUseCase forecast.UseCase
}

// NewHealthUseCase builds the health check. A nil cacheChecker reports the cache as disabled.
func NewHealthUseCase(cacheChecker CacheChecker, forecastUseCase forecast.UseCase) UseCase {
	return &healthUseCase{
		cacheChecker:    cacheChecker,
		forecastUseCase: forecastUseCase,
	}
}

// CheckHealth is DOWN when the cache is down and DEGRADED when only the upstream failed.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.cacheHealth(ctx)
	upstreamHealth := useCase.upstreamHealth()

	overallStatus := model.StatusUp
	switch {
	case cacheHealth.Status == model.StatusDown:
		overallStatus = model.StatusDown
	case upstreamHealth.Status == model.StatusDown:
		overallStatus = model.StatusDegraded
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Cache:    cacheHealth,
		Upstream: upstreamHealth,
	}
}

func (useCase *healthUseCase) cacheHealth(ctx context.Context) model.ComponentHealthStatus {
	if useCase.cacheChecker == nil {
		return model.ComponentHealthStatus{Status: model.StatusDisabled, Details: map[string]string{}}
	}

	check := useCase.cacheChecker.HealthCheck(ctx)
	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: check.Details}
}

func (useCase *healthUseCase) upstreamHealth() model.ComponentHealthStatus {
	outcome := useCase.forecastUseCase.LastOutcome()
	if outcome.Attempts == 0 {
		return model.ComponentHealthStatus{Status: model.StatusUnknown, Details: map[string]string{}}
	}

	details := map[string]string{
		"last_attempt": outcome.At.Format(time.RFC3339),
		"attempts":     strconv.Itoa(outcome.Attempts),
		"periods":      strconv.Itoa(outcome.Periods),
	}
	if outcome.Failure != "" {
		details["failure"] = outcome.Failure
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

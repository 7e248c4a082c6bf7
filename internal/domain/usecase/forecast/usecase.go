package forecast

import (
	"context"

	"beach-cleanup/internal/domain/entity"
)

type UseCase interface {
	// Load returns the live forecast, from cache when available. Any failure is
	// returned wrapped in one of the forecast sentinel errors and never cached.
	Load(ctx context.Context) (entity.ForecastSet, error)

	// Refresh fetches the live forecast ignoring the cache and stores it
	Refresh(ctx context.Context) error

	// Fallback synthesizes the fixed four-day forecast starting today
	Fallback() entity.ForecastSet

	// LastOutcome reports the result of the most recent upstream call
	LastOutcome() Outcome
}

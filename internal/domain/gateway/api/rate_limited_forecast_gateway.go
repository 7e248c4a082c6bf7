package api

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/time/rate"
)

// rateLimitedForecastGateway bounds how often page views can hit the upstream
type rateLimitedForecastGateway struct {
	gateway ForecastGateway
	limiter *rate.Limiter
}

// NewRateLimitedForecastGateway wraps gateway with a token bucket of rps requests per
// second and the given burst. A non-positive rps disables limiting.
func NewRateLimitedForecastGateway(gateway ForecastGateway, rps float64, burst int) ForecastGateway {
	if rps <= 0 {
		return gateway
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedForecastGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchForecast waits for a token before forwarding the call
func (r *rateLimitedForecastGateway) FetchForecast(ctx context.Context) (json.RawMessage, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait canceled: %v", ErrTransport, err)
	}
	return r.gateway.FetchForecast(ctx)
}

var _ ForecastGateway = (*rateLimitedForecastGateway)(nil)

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"beach-cleanup/pkg/http"
)

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *http.Client
}

// NewForecastGateway creates a gateway targeting endpointURL. The URL is used as is,
// without path or query.
func NewForecastGateway(endpointURL string, clientOptions http.ClientOptions) ForecastGateway {
	if clientOptions.DefaultHeaders == nil {
		clientOptions.DefaultHeaders = map[string]string{"Accept": "application/json"}
	}
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.NewZapLogger("forecast")
	}

	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(endpointURL, clientOptions),
	}
}

// FetchForecast gets the forecast body
func (f *forecastGatewayImpl) FetchForecast(ctx context.Context) (json.RawMessage, error) {
	var body json.RawMessage

	_, _, status, err := f.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithSuccessResp(&body).
		Execute()

	if err == nil {
		return body, nil
	}

	var statusErr *http.StatusError
	switch {
	case errors.As(err, &statusErr):
		return nil, fmt.Errorf("%w: %d", ErrStatus, statusErr.StatusCode)
	case status == 0, errors.Is(err, http.ErrBodyRead):
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	case status >= 200 && status < 300:
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
}

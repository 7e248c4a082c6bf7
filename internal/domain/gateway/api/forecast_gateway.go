package api

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrTransport covers network, DNS and connection failures.
	ErrTransport = errors.New("forecast transport failure")
	// ErrStatus is returned when the endpoint answers with a non-2xx status.
	ErrStatus = errors.New("forecast endpoint returned non-success status")
	// ErrParse is returned when the body is not valid JSON.
	ErrParse = errors.New("forecast response is not valid JSON")
)

// ForecastGateway defines the call to the fixed-region forecast endpoint
type ForecastGateway interface {
	// FetchForecast performs one GET and returns the raw JSON body.
	// Errors wrap ErrTransport, ErrStatus or ErrParse.
	FetchForecast(ctx context.Context) (json.RawMessage, error)
}

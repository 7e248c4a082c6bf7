package forecast

import (
	"errors"

	"beach-cleanup/internal/domain/gateway/api"
)

var (
	// ErrShapeMismatch means the body was valid JSON but matched no known layout.
	ErrShapeMismatch = errors.New("unexpected forecast response structure")
	// ErrEmptyForecast means a known layout carried zero periods.
	ErrEmptyForecast = errors.New("forecast contains no periods")
)

// Failure kinds reported in logs, the JSON view and health details.
const (
	FailureTransport     = "transport"
	FailureStatus        = "status"
	FailureParse         = "parse"
	FailureShapeMismatch = "shape-mismatch"
	FailureEmptyForecast = "empty-forecast"
	FailureUnknown       = "unknown"
)

// FailureKind classifies a Load error. It returns "" for nil.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, api.ErrTransport):
		return FailureTransport
	case errors.Is(err, api.ErrStatus):
		return FailureStatus
	case errors.Is(err, api.ErrParse):
		return FailureParse
	case errors.Is(err, ErrShapeMismatch):
		return FailureShapeMismatch
	case errors.Is(err, ErrEmptyForecast):
		return FailureEmptyForecast
	default:
		return FailureUnknown
	}
}

// ShowsErrorFirst reports whether a failure gets the transient error banner before the
// fallback. An unexpected structure goes straight to the fallback.
func ShowsErrorFirst(err error) bool {
	return err != nil && !errors.Is(err, ErrShapeMismatch)
}

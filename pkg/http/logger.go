package http

import (
	"beach-cleanup/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger defines the hooks the client calls around every request
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called after receiving a 2xx response
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or a non-2xx response
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}
func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}
func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes outbound request traces through pkg/log.
type ZapLogger struct {
	// Client names the upstream in every entry
	Client string
}

func NewZapLogger(client string) *ZapLogger {
	return &ZapLogger{Client: client}
}

func (l *ZapLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug("outbound request",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url))
}

func (l *ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Info("outbound request completed",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("response_size", len(responseBody)),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

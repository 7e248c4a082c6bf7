package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"beach-cleanup/configs"
	"beach-cleanup/internal/domain/gateway/api"
	"beach-cleanup/internal/domain/model"
	"beach-cleanup/internal/domain/usecase/forecast"
	"beach-cleanup/pkg/http"
	"beach-cleanup/pkg/log"
	"beach-cleanup/pkg/resource"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// forecast-probe performs a single forecast load against the configured endpoint and
// prints the view the widget would render. It exits 1 when the fallback was used.
func main() {
	if err := configs.Load(); err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	defer log.Sync()

	url := pflag.String("url", resource.GetString("app.forecast.url"), "forecast endpoint")
	lang := pflag.String("lang", "en", "Accept-Language used for day labels")
	timeout := pflag.Duration("timeout", resource.GetDurationOrDefault("app.forecast.read-timeout", 30*time.Second), "request timeout")
	pflag.Parse()

	gateway := api.NewForecastGateway(*url, http.ClientOptions{ReadTimeout: *timeout})
	useCase := forecast.NewForecastUseCase(gateway, nil)
	tag := forecast.MatchLanguage(*lang)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	forecastSet, err := useCase.Load(ctx)
	if err == nil && len(forecastSet) == 0 {
		err = forecast.ErrEmptyForecast
	}

	var view model.ForecastView
	if err != nil {
		log.Errorw("Forecast probe failed", "url", *url, "failure", forecast.FailureKind(err), "error", err, "latency", time.Since(start))
		view = forecast.NewView(model.StateFallback, model.SourceFallback, err, useCase.Fallback(), tag)
	} else {
		log.Infow("Forecast probe succeeded", "url", *url, "periods", len(forecastSet), "latency", time.Since(start))
		view = forecast.NewView(model.StateRendered, model.SourceLive, nil, forecastSet, tag)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if encodeErr := encoder.Encode(view); encodeErr != nil {
		log.Fatal("failed to print forecast", zap.Error(encodeErr))
	}
	if err != nil {
		log.Sync()
		os.Exit(1)
	}
}

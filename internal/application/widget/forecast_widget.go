package widget

import (
	"context"
	"time"

	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/model"
	"beach-cleanup/internal/domain/usecase/forecast"
	"beach-cleanup/pkg/log"
	"beach-cleanup/pkg/msg"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// DefaultFallbackDelay is how long the error banner stays before the fallback replaces it.
const DefaultFallbackDelay = 2 * time.Second

// Container receives every render of one widget load, in order. Replace may be called
// from the fallback timer goroutine.
type Container interface {
	Replace(view model.ForecastView)
}

// ForecastWidget drives one forecast load into a container:
// loading, then cards, or error followed by the fallback after a delay, or the
// fallback directly when the upstream structure is not recognized.
type ForecastWidget struct {
	useCase       forecast.UseCase
	fallbackDelay time.Duration
}

func NewForecastWidget(useCase forecast.UseCase, fallbackDelay time.Duration) *ForecastWidget {
	if fallbackDelay <= 0 {
		fallbackDelay = DefaultFallbackDelay
	}
	return &ForecastWidget{useCase: useCase, fallbackDelay: fallbackDelay}
}

// Load fetches the forecast and renders it into container. The returned channel is
// closed after the last render, which may come from the fallback timer.
func (w *ForecastWidget) Load(ctx context.Context, container Container, tag language.Tag) <-chan struct{} {
	container.Replace(model.ForecastView{State: model.StateLoading, Days: []model.DayView{}})

	forecastSet, err := w.useCase.Load(ctx)
	if err != nil {
		return w.fail(container, err, tag)
	}
	return w.Render(container, forecastSet, tag)
}

// Render shows forecastSet as cards. An empty set takes the error then fallback path.
func (w *ForecastWidget) Render(container Container, forecastSet entity.ForecastSet, tag language.Tag) <-chan struct{} {
	if len(forecastSet) == 0 {
		return w.fail(container, forecast.ErrEmptyForecast, tag)
	}

	container.Replace(forecast.NewView(model.StateRendered, model.SourceLive, nil, forecastSet, tag))
	return settled()
}

// Resolve returns the terminal view without the intermediate error state, for callers
// that can only answer once.
func (w *ForecastWidget) Resolve(ctx context.Context, tag language.Tag) model.ForecastView {
	forecastSet, err := w.useCase.Load(ctx)
	if err == nil && len(forecastSet) == 0 {
		err = forecast.ErrEmptyForecast
	}
	if err != nil {
		w.logFailure(err)
		return forecast.NewView(model.StateFallback, model.SourceFallback, err, w.useCase.Fallback(), tag)
	}
	return forecast.NewView(model.StateRendered, model.SourceLive, nil, forecastSet, tag)
}

func (w *ForecastWidget) fail(container Container, err error, tag language.Tag) <-chan struct{} {
	w.logFailure(err)

	if !forecast.ShowsErrorFirst(err) {
		w.renderFallback(container, err, tag)
		return settled()
	}

	container.Replace(model.ForecastView{
		State:   model.StateError,
		Source:  model.SourceFallback,
		Failure: forecast.FailureKind(err),
		Days:    []model.DayView{},
	})

	done := make(chan struct{})
	time.AfterFunc(w.fallbackDelay, func() {
		defer close(done)
		w.renderFallback(container, err, tag)
	})
	return done
}

func (w *ForecastWidget) renderFallback(container Container, cause error, tag language.Tag) {
	container.Replace(forecast.NewView(model.StateFallback, model.SourceFallback, cause, w.useCase.Fallback(), tag))
	log.Debug(msg.GetMessage("forecast.fallback-rendered"))
}

func (w *ForecastWidget) logFailure(err error) {
	kind := forecast.FailureKind(err)
	if kind == forecast.FailureShapeMismatch {
		log.Warn(msg.GetMessage("forecast.shape-mismatch"), zap.String("failure", kind), zap.Error(err))
		return
	}
	log.Error(msg.GetMessage("forecast.load-failed", err), zap.String("failure", kind), zap.Error(err))
}

func settled() <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}

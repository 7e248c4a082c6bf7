package widget

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/gateway/api"
	"beach-cleanup/internal/domain/model"
	"beach-cleanup/internal/domain/usecase/forecast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testDelay = 50 * time.Millisecond

type stubUseCase struct {
	forecast entity.ForecastSet
	err      error
}

func (s *stubUseCase) Load(context.Context) (entity.ForecastSet, error) {
	return s.forecast, s.err
}

func (s *stubUseCase) Refresh(context.Context) error {
	return s.err
}

func (s *stubUseCase) Fallback() entity.ForecastSet {
	return forecast.MockForecast(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
}

func (s *stubUseCase) LastOutcome() forecast.Outcome {
	return forecast.Outcome{}
}

type recordingContainer struct {
	mu    sync.Mutex
	views []model.ForecastView
	times []time.Time
}

func (c *recordingContainer) Replace(view model.ForecastView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views = append(c.views, view)
	c.times = append(c.times, time.Now())
}

func (c *recordingContainer) states() []model.ForecastState {
	c.mu.Lock()
	defer c.mu.Unlock()
	states := make([]model.ForecastState, 0, len(c.views))
	for _, view := range c.views {
		states = append(states, view.State)
	}
	return states
}

func (c *recordingContainer) last() model.ForecastView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.views[len(c.views)-1]
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("widget did not settle")
	}
}

func liveForecast() entity.ForecastSet {
	high := 33.0
	return entity.ForecastSet{
		{Date: "2024-05-01", ConditionText: "Thundery Showers", TempHigh: &high},
		{Date: "2024-05-02", ConditionText: "Fair"},
	}
}

func TestLoadRendersLiveData(t *testing.T) {
	widget := NewForecastWidget(&stubUseCase{forecast: liveForecast()}, testDelay)
	container := &recordingContainer{}

	waitDone(t, widget.Load(context.Background(), container, language.English))

	assert.Equal(t, []model.ForecastState{model.StateLoading, model.StateRendered}, container.states())
	view := container.last()
	assert.Equal(t, model.SourceLive, view.Source)
	require.Len(t, view.Days, 2)
	assert.Equal(t, "Today", view.Days[0].Label)
	assert.Equal(t, "33°C", view.Days[0].High)
	assert.Equal(t, model.NotAvailable, view.Days[0].Low)
	assert.Equal(t, entity.SeverityDanger, view.Days[0].Advice.Severity)
}

func TestLoadShowsErrorThenFallback(t *testing.T) {
	failures := []error{
		fmt.Errorf("%w: 503", api.ErrStatus),
		fmt.Errorf("%w: connection refused", api.ErrTransport),
		fmt.Errorf("%w: bad json", api.ErrParse),
		forecast.ErrEmptyForecast,
	}

	for _, failure := range failures {
		t.Run(failure.Error(), func(t *testing.T) {
			widget := NewForecastWidget(&stubUseCase{err: failure}, testDelay)
			container := &recordingContainer{}

			start := time.Now()
			done := widget.Load(context.Background(), container, language.English)
			assert.Equal(t, []model.ForecastState{model.StateLoading, model.StateError}, container.states())

			waitDone(t, done)
			assert.GreaterOrEqual(t, time.Since(start), testDelay)
			assert.Equal(t, []model.ForecastState{model.StateLoading, model.StateError, model.StateFallback}, container.states())

			view := container.last()
			assert.Equal(t, model.SourceFallback, view.Source)
			assert.Equal(t, forecast.FailureKind(failure), view.Failure)
			require.Len(t, view.Days, 4)
			assert.Equal(t, "Partly Cloudy (Day)", view.Days[0].Condition)
		})
	}
}

func TestLoadShapeMismatchGoesStraightToFallback(t *testing.T) {
	widget := NewForecastWidget(&stubUseCase{err: forecast.ErrShapeMismatch}, time.Hour)
	container := &recordingContainer{}

	waitDone(t, widget.Load(context.Background(), container, language.English))

	assert.Equal(t, []model.ForecastState{model.StateLoading, model.StateFallback}, container.states())
	assert.Equal(t, forecast.FailureShapeMismatch, container.last().Failure)
}

func TestRenderEmptySetTakesFailurePath(t *testing.T) {
	widget := NewForecastWidget(&stubUseCase{}, testDelay)
	container := &recordingContainer{}

	waitDone(t, widget.Render(container, entity.ForecastSet{}, language.English))

	assert.Equal(t, []model.ForecastState{model.StateError, model.StateFallback}, container.states())
	assert.Equal(t, forecast.FailureEmptyForecast, container.last().Failure)
}

func TestResolve(t *testing.T) {
	live := NewForecastWidget(&stubUseCase{forecast: liveForecast()}, time.Hour)
	view := live.Resolve(context.Background(), language.English)
	assert.Equal(t, model.StateRendered, view.State)
	assert.Equal(t, model.SourceLive, view.Source)

	failing := NewForecastWidget(&stubUseCase{err: api.ErrTransport}, time.Hour)
	view = failing.Resolve(context.Background(), language.English)
	assert.Equal(t, model.StateFallback, view.State)
	assert.Equal(t, forecast.FailureTransport, view.Failure)
	assert.Len(t, view.Days, 4)

	empty := NewForecastWidget(&stubUseCase{forecast: entity.ForecastSet{}}, time.Hour)
	view = empty.Resolve(context.Background(), language.English)
	assert.Equal(t, model.StateFallback, view.State)
	assert.Equal(t, forecast.FailureEmptyForecast, view.Failure)
}

func TestNewForecastWidgetDefaultsDelay(t *testing.T) {
	widget := NewForecastWidget(&stubUseCase{}, 0)
	assert.Equal(t, DefaultFallbackDelay, widget.fallbackDelay)
}

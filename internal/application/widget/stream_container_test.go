package widget

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"

	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/gateway/api"
	"beach-cleanup/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type stateRenderer struct {
	err error
}

func (r stateRenderer) Fragment(_ string, data interface{}) (template.HTML, error) {
	if r.err != nil {
		return "", r.err
	}
	view := data.(model.ForecastView)
	return template.HTML("<div>\n" + string(view.State) + "\n</div>"), nil
}

type countingFlusher struct {
	flushes int
}

func (f *countingFlusher) Flush() {
	f.flushes++
}

func TestStreamContainerWritesEvents(t *testing.T) {
	var buf bytes.Buffer
	flusher := &countingFlusher{}
	container := NewStreamContainer(&buf, flusher, stateRenderer{})

	container.Replace(model.ForecastView{State: model.StateLoading})
	container.Close()

	out := buf.String()
	id := container.StreamID()
	assert.Contains(t, out, "id: "+id+"-1\nevent: forecast\ndata: <div>\ndata: loading\ndata: </div>\n\n")
	assert.Contains(t, out, "id: "+id+"-2\nevent: done\ndata: {}\n\n")
	assert.Equal(t, 2, flusher.flushes)
}

func TestStreamContainerDropsRendersAfterClose(t *testing.T) {
	var buf bytes.Buffer
	container := NewStreamContainer(&buf, nil, stateRenderer{})

	container.Abandon()
	container.Replace(model.ForecastView{State: model.StateFallback})
	container.Close()

	assert.Empty(t, buf.String())
	assert.Empty(t, container.States())
}

func TestStreamContainerSkipsRenderFailures(t *testing.T) {
	var buf bytes.Buffer
	container := NewStreamContainer(&buf, nil, stateRenderer{err: errors.New("template")})

	container.Replace(model.ForecastView{State: model.StateLoading})

	assert.Empty(t, buf.String())
}

func TestStreamContainerFollowsWidgetTimeline(t *testing.T) {
	var buf bytes.Buffer
	container := NewStreamContainer(&buf, nil, stateRenderer{})
	widget := NewForecastWidget(&stubUseCase{err: api.ErrStatus}, testDelay)

	waitDone(t, widget.Load(context.Background(), container, language.English))
	container.Close()

	assert.Equal(t, []model.ForecastState{model.StateLoading, model.StateError, model.StateFallback}, container.States())
	assert.Equal(t, 4, strings.Count(buf.String(), "event: "))
}

func TestStreamContainerRendersLiveCards(t *testing.T) {
	var buf bytes.Buffer
	container := NewStreamContainer(&buf, nil, stateRenderer{})
	widget := NewForecastWidget(&stubUseCase{forecast: entity.ForecastSet{{Date: "2024-05-01", ConditionText: "Sunny"}}}, testDelay)

	waitDone(t, widget.Load(context.Background(), container, language.English))

	assert.Equal(t, []model.ForecastState{model.StateLoading, model.StateRendered}, container.States())
	assert.Contains(t, buf.String(), "data: rendered\n")
}

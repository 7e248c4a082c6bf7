package widget

import (
	"html/template"
	"io"
	"strconv"
	"sync"

	"beach-cleanup/internal/domain/model"
	"beach-cleanup/pkg/log"
	"beach-cleanup/pkg/msg"
	"beach-cleanup/pkg/sse"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ForecastEvent carries the container's new inner HTML
	ForecastEvent = "forecast"
	// DoneEvent tells the page no further renders will follow
	DoneEvent = "done"
)

// FragmentRenderer renders a named template to HTML
type FragmentRenderer interface {
	Fragment(name string, data interface{}) (template.HTML, error)
}

// StreamContainer writes each render as a server-sent event. Renders arriving after
// Close are dropped, so a fallback timer that outlives the request is harmless.
type StreamContainer struct {
	mu       sync.Mutex
	w        io.Writer
	flusher  sse.Flusher
	renderer FragmentRenderer
	streamID string
	sequence int
	closed   bool
	states   []model.ForecastState
}

func NewStreamContainer(w io.Writer, flusher sse.Flusher, renderer FragmentRenderer) *StreamContainer {
	return &StreamContainer{
		w:        w,
		flusher:  flusher,
		renderer: renderer,
		streamID: uuid.New().String(),
	}
}

// Replace renders view and pushes it to the client
func (c *StreamContainer) Replace(view model.ForecastView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	fragment, err := c.renderer.Fragment("forecast", view)
	if err != nil {
		log.Error(msg.GetMessage("forecast.render-failed", err), zap.String("stream_id", c.streamID), zap.Error(err))
		return
	}

	c.sequence++
	c.states = append(c.states, view.State)
	if err := sse.Write(c.w, c.flusher, sse.Event{ID: c.eventID(), Name: ForecastEvent, Data: string(fragment)}); err != nil {
		c.closed = true
	}
}

// Close sends the done event and stops accepting renders
func (c *StreamContainer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.sequence++
	_ = sse.Write(c.w, c.flusher, sse.Event{ID: c.eventID(), Name: DoneEvent, Data: "{}"})
}

// Abandon stops accepting renders without writing anything, for disconnected clients
func (c *StreamContainer) Abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// States returns the states rendered so far
func (c *StreamContainer) States() []model.ForecastState {
	c.mu.Lock()
	defer c.mu.Unlock()
	states := make([]model.ForecastState, len(c.states))
	copy(states, c.states)
	return states
}

func (c *StreamContainer) StreamID() string {
	return c.streamID
}

func (c *StreamContainer) eventID() string {
	return c.streamID + "-" + strconv.Itoa(c.sequence)
}

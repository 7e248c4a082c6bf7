package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Flusher pushes buffered bytes to the client
type Flusher interface {
	Flush()
}

// Prepare sets the event-stream headers and returns the writer's flusher, or nil when
// the writer cannot flush.
func Prepare(w http.ResponseWriter) Flusher {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil
	}
	flusher.Flush()
	return flusher
}

// Event is one server-sent event. Data is sent as is when it is a string, JSON otherwise.
type Event struct {
	ID    string
	Name  string
	Data  any
	Retry int
}

// Write encodes event to w. Multi-line payloads are split into one data field per line.
func Write(w io.Writer, flusher Flusher, event Event) error {
	payload, err := encode(event.Data)
	if err != nil {
		return err
	}

	var b strings.Builder
	if event.ID != "" {
		fmt.Fprintf(&b, "id: %s\n", event.ID)
	}
	if event.Name != "" {
		fmt.Fprintf(&b, "event: %s\n", event.Name)
	}
	if event.Retry > 0 {
		fmt.Fprintf(&b, "retry: %d\n", event.Retry)
	}
	for _, line := range strings.Split(strings.ReplaceAll(payload, "\r\n", "\n"), "\n") {
		fmt.Fprintf(&b, "data: %s\n", line)
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if flusher != nil {
		flusher.Flush()
	}
	return nil
}

func encode(v any) (string, error) {
	switch data := v.(type) {
	case string:
		return data, nil
	case fmt.Stringer:
		return data.String(), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

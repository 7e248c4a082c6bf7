package catalog

import (
	"bytes"
	"fmt"
	"sort"

	"beach-cleanup/internal/domain/entity"

	"github.com/spf13/viper"
)

type yamlEventGateway struct {
	events []entity.CleanupEvent
	byID   map[string]int
}

// NewYAMLEventGateway parses an `events:` list. Duplicate or empty ids are rejected.
func NewYAMLEventGateway(content []byte) (EventGateway, error) {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to parse event catalog: %w", err)
	}

	var events []entity.CleanupEvent
	if err := v.UnmarshalKey("events", &events); err != nil {
		return nil, fmt.Errorf("failed to decode event catalog: %w", err)
	}

	return NewEventGateway(events)
}

// NewEventGateway builds the catalog from already decoded events.
func NewEventGateway(events []entity.CleanupEvent) (EventGateway, error) {
	sorted := make([]entity.CleanupEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Time < sorted[j].Time
	})

	byID := make(map[string]int, len(sorted))
	for i, event := range sorted {
		if event.ID == "" {
			return nil, fmt.Errorf("event %q has no id", event.Title)
		}
		if _, exists := byID[event.ID]; exists {
			return nil, fmt.Errorf("duplicate event id %q", event.ID)
		}
		byID[event.ID] = i
	}

	return &yamlEventGateway{events: sorted, byID: byID}, nil
}

func (g *yamlEventGateway) FindAll() []entity.CleanupEvent {
	result := make([]entity.CleanupEvent, len(g.events))
	copy(result, g.events)
	return result
}

func (g *yamlEventGateway) FindByID(id string) (entity.CleanupEvent, bool) {
	i, ok := g.byID[id]
	if !ok {
		return entity.CleanupEvent{}, false
	}
	return g.events[i], true
}

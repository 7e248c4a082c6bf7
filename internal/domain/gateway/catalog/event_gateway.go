package catalog

import "beach-cleanup/internal/domain/entity"

// EventGateway reads the cleanup event catalog
type EventGateway interface {
	// FindAll returns every event ordered by date then time
	FindAll() []entity.CleanupEvent
	// FindByID returns the event with id, or false
	FindByID(id string) (entity.CleanupEvent, bool)
}

package event

import (
	"beach-cleanup/internal/domain/model"
)

type UseCase interface {
	// FindAll returns a page of events in date order, flagged against favorites
	FindAll(page int, size int, favorites Favorites) *model.Page[model.EventView]

	// List returns the whole catalog in date order, flagged against favorites
	List(favorites Favorites) []model.EventView

	// ToggleFavorite flips id in favorites and reports whether it is now a favorite
	ToggleFavorite(favorites Favorites, id string) (Favorites, bool, error)

	// FindNearby returns up to limit events closest to location
	FindNearby(location model.Location, limit int, favorites Favorites) ([]model.EventView, error)

	// Count returns the number of events in the catalog
	Count() int
}

package event

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/gateway/catalog"
	"beach-cleanup/internal/domain/model"
	"beach-cleanup/pkg/log"
	"beach-cleanup/pkg/msg"
	"beach-cleanup/pkg/util/numberutils"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

const maxPageSize = 50

type eventUseCase struct {
	catalog      catalog.EventGateway
	defaultLimit int
}

func NewEventUseCase(eventGateway catalog.EventGateway, defaultLimit int) UseCase {
	if defaultLimit < 1 {
		defaultLimit = 3
	}
	return &eventUseCase{catalog: eventGateway, defaultLimit: defaultLimit}
}

// FindAll returns a page of events in date order
func (uc *eventUseCase) FindAll(page int, size int, favorites Favorites) *model.Page[model.EventView] {
	size = numberutils.MinInt(numberutils.MaxInt(size, 1), maxPageSize)
	page = numberutils.MaxInt(page, 0)

	events := uc.catalog.FindAll()
	start := len(events)
	if page <= len(events)/size {
		start = numberutils.MinInt(page*size, len(events))
	}
	end := numberutils.MinInt(start+size, len(events))

	content := make([]model.EventView, 0, end-start)
	for _, event := range events[start:end] {
		content = append(content, toView(event, favorites, nil))
	}

	return model.NewPage(content, page, size, int64(len(events)))
}

// List returns the whole catalog in date order
func (uc *eventUseCase) List(favorites Favorites) []model.EventView {
	events := uc.catalog.FindAll()
	content := make([]model.EventView, 0, len(events))
	for _, event := range events {
		content = append(content, toView(event, favorites, nil))
	}
	return content
}

// ToggleFavorite flips id in a copy of favorites
func (uc *eventUseCase) ToggleFavorite(favorites Favorites, id string) (Favorites, bool, error) {
	if _, ok := uc.catalog.FindByID(id); !ok {
		return favorites, false, fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}

	updated := favorites.clone()
	favorite := !updated.Has(id)
	if favorite {
		updated[id] = struct{}{}
	} else {
		delete(updated, id)
	}

	log.Debug(msg.GetMessage("event.favorite-toggled", id, favorite))
	return updated, favorite, nil
}

// FindNearby sorts the catalog by distance from location
func (uc *eventUseCase) FindNearby(location model.Location, limit int, favorites Favorites) ([]model.EventView, error) {
	if !ValidLocation(location.Latitude, location.Longitude) {
		return nil, fmt.Errorf("%w: %v,%v", ErrInvalidCoordinates, location.Latitude, location.Longitude)
	}
	if limit < 1 {
		limit = uc.defaultLimit
	}

	events := uc.catalog.FindAll()
	nearby := make([]model.EventView, 0, len(events))
	for _, event := range events {
		distance := math.Round(haversineKm(location.Latitude, location.Longitude, event.Latitude, event.Longitude)*10) / 10
		nearby = append(nearby, toView(event, favorites, &distance))
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return *nearby[i].DistanceKm < *nearby[j].DistanceKm
	})

	return nearby[:numberutils.MinInt(limit, len(nearby))], nil
}

func (uc *eventUseCase) Count() int {
	return len(uc.catalog.FindAll())
}

func toView(event entity.CleanupEvent, favorites Favorites, distance *float64) model.EventView {
	return model.EventView{
		CleanupEvent: event,
		Favorite:     favorites.Has(event.ID),
		DistanceKm:   distance,
	}
}

package model

import "beach-cleanup/internal/domain/entity"

// EventView is a cleanup event as shown to one browser.
type EventView struct {
	entity.CleanupEvent
	Favorite   bool     `json:"favorite"`
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// FavoriteResponse is returned after toggling a favorite.
type FavoriteResponse struct {
	EventID  string `json:"eventId"`
	Favorite bool   `json:"favorite"`
}

// Location is a browser-reported position.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyResponse lists the closest events to a location.
type NearbyResponse struct {
	Location Location    `json:"location"`
	Events   []EventView `json:"events"`
}

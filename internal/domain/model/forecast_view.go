package model

import "beach-cleanup/internal/domain/entity"

// NotAvailable replaces any numeric field the upstream did not send.
const NotAvailable = "N/A"

// ForecastState is the lifecycle of one widget load.
type ForecastState string

const (
	StateNotLoaded ForecastState = "not-loaded"
	StateLoading   ForecastState = "loading"
	StateRendered  ForecastState = "rendered"
	StateError     ForecastState = "error"
	StateFallback  ForecastState = "fallback"
)

// ForecastSource tells whether the days came from the upstream or were synthesized.
type ForecastSource string

const (
	SourceLive     ForecastSource = "live"
	SourceFallback ForecastSource = "fallback"
)

// ForecastView is the display-ready forecast handed to templates and the JSON API.
type ForecastView struct {
	State   ForecastState  `json:"state"`
	Source  ForecastSource `json:"source"`
	Failure string         `json:"failure,omitempty"`
	Days    []DayView      `json:"days"`
}

// DayView is one rendered forecast card.
type DayView struct {
	Label     string                    `json:"label"`
	Date      string                    `json:"date"`
	Icon      entity.WeatherIcon        `json:"icon"`
	High      string                    `json:"high"`
	Low       string                    `json:"low"`
	Condition string                    `json:"condition"`
	Humidity  string                    `json:"humidity"`
	Wind      string                    `json:"wind"`
	Advice    entity.SuitabilityVerdict `json:"advice"`
}

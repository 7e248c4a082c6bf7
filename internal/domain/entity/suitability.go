package entity

// Severity grades how suitable a day is for an outdoor cleanup.
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityCaution Severity = "caution"
	SeverityGood    Severity = "good"
)

// SuitabilityVerdict is derived from a period's condition text and never stored.
type SuitabilityVerdict struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// WeatherIcon names the icon class shown on a forecast card.
type WeatherIcon string

const (
	IconStorm        WeatherIcon = "fa-cloud-bolt"
	IconRain         WeatherIcon = "fa-cloud-rain"
	IconCloud        WeatherIcon = "fa-cloud"
	IconPartialCloud WeatherIcon = "fa-cloud-sun"
	IconHaze         WeatherIcon = "fa-smog"
	IconWind         WeatherIcon = "fa-wind"
	IconClear        WeatherIcon = "fa-sun"
)

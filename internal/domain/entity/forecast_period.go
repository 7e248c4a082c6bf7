package entity

// ForecastPeriod is one day of the upstream forecast. Numeric fields are nil when the
// upstream omitted them.
type ForecastPeriod struct {
	Date          string   `json:"date"`
	ConditionText string   `json:"conditionText"`
	TempHigh      *float64 `json:"tempHigh,omitempty"`
	TempLow       *float64 `json:"tempLow,omitempty"`
	HumidityHigh  *float64 `json:"humidityHigh,omitempty"`
	WindSpeedHigh *float64 `json:"windSpeedHigh,omitempty"`
}

// ForecastSet is ordered by day; index 0 is today.
type ForecastSet []ForecastPeriod

package forecast

import (
	"time"

	"beach-cleanup/internal/domain/entity"
)

const isoDate = "2006-01-02"

type mockDay struct {
	condition string
	high      float64
	low       float64
	humidity  float64
	wind      float64
}

var mockDays = [...]mockDay{
	{condition: "Partly Cloudy (Day)", high: 32, low: 26, humidity: 85, wind: 20},
	{condition: "Afternoon thundery showers", high: 31, low: 25, humidity: 95, wind: 25},
	{condition: "Fair & Warm", high: 33, low: 26, humidity: 80, wind: 15},
	{condition: "Showers", high: 30, low: 24, humidity: 90, wind: 20},
}

// MockForecast builds the fallback set: one period per mockDays entry, dated today and
// the following consecutive days.
func MockForecast(now time.Time) entity.ForecastSet {
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	forecast := make(entity.ForecastSet, 0, len(mockDays))
	for offset, mock := range mockDays {
		forecast = append(forecast, entity.ForecastPeriod{
			Date:          today.AddDate(0, 0, offset).Format(isoDate),
			ConditionText: mock.condition,
			TempHigh:      number(mock.high),
			TempLow:       number(mock.low),
			HumidityHigh:  number(mock.humidity),
			WindSpeedHigh: number(mock.wind),
		})
	}
	return forecast
}

func number(value float64) *float64 {
	return &value
}

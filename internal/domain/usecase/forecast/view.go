package forecast

import (
	"strconv"

	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/model"

	"golang.org/x/text/language"
)

// BuildDayViews turns a forecast set into display cards. Every numeric field is read
// independently and replaced with model.NotAvailable when missing.
func BuildDayViews(forecast entity.ForecastSet, tag language.Tag) []model.DayView {
	days := make([]model.DayView, 0, len(forecast))
	for i, period := range forecast {
		days = append(days, model.DayView{
			Label:     DayLabel(i, period.Date, tag),
			Date:      period.Date,
			Icon:      WeatherIcon(period.ConditionText),
			High:      formatMeasure(period.TempHigh, "°C"),
			Low:       formatMeasure(period.TempLow, "°C"),
			Condition: period.ConditionText,
			Humidity:  formatMeasure(period.HumidityHigh, "%"),
			Wind:      formatMeasure(period.WindSpeedHigh, " km/h"),
			Advice:    CleanupAdvice(period.ConditionText),
		})
	}
	return days
}

// NewView builds the view for a terminal or intermediate widget state.
func NewView(state model.ForecastState, source model.ForecastSource, err error, forecast entity.ForecastSet, tag language.Tag) model.ForecastView {
	return model.ForecastView{
		State:   state,
		Source:  source,
		Failure: FailureKind(err),
		Days:    BuildDayViews(forecast, tag),
	}
}

func formatMeasure(value *float64, unit string) string {
	if value == nil {
		return model.NotAvailable
	}
	return strconv.FormatFloat(*value, 'f', -1, 64) + unit
}

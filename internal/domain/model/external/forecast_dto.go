package external

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ForecastDataDTO is shape A of the forecast response: {"data": {"records": [...]}}
type ForecastDataDTO struct {
	Records []json.RawMessage `json:"records"`
}

// ForecastRecordDTO is one record/item of the response, carrying the daily periods
type ForecastRecordDTO struct {
	Forecasts []ForecastPeriodDTO `json:"forecasts"`
}

// ForecastPeriodDTO is a single day as sent by the upstream. Both the v1 (snake_case,
// string forecast) and v2 (camelCase, object forecast) layouts are accepted.
type ForecastPeriodDTO struct {
	Date             string
	Forecast         string
	Temperature      RangeDTO
	RelativeHumidity RangeDTO
	WindSpeed        RangeDTO
}

// RangeDTO carries the low/high pair of a measurement. Anything other than an object
// leaves both ends unset.
type RangeDTO struct {
	Low  NullableNumber
	High NullableNumber
}

func (r *RangeDTO) UnmarshalJSON(data []byte) error {
	*r = RangeDTO{}
	fields, ok := decodeObject(data)
	if !ok {
		return nil
	}
	r.Low = decodeNumber(fields["low"])
	r.High = decodeNumber(fields["high"])
	return nil
}

type forecastTextDTO struct {
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

// UnmarshalJSON reads every field on its own so a badly typed field only blanks itself.
func (p *ForecastPeriodDTO) UnmarshalJSON(data []byte) error {
	*p = ForecastPeriodDTO{}
	fields, ok := decodeObject(data)
	if !ok {
		return nil
	}

	p.Date = decodeString(fields["date"])
	if timestamp := decodeString(fields["timestamp"]); p.Date == "" && len(timestamp) >= len("2006-01-02") {
		p.Date = timestamp[:len("2006-01-02")]
	}
	p.Forecast = decodeForecastText(fields["forecast"])
	p.Temperature = decodeRange(fields["temperature"])

	humidity, ok := fields["relative_humidity"]
	if !ok || isNull(humidity) {
		humidity = fields["relativeHumidity"]
	}
	p.RelativeHumidity = decodeRange(humidity)

	if wind, ok := decodeObject(fields["wind"]); ok {
		p.WindSpeed = decodeRange(wind["speed"])
	}
	return nil
}

func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

func decodeRange(raw json.RawMessage) RangeDTO {
	var r RangeDTO
	_ = r.UnmarshalJSON(raw)
	return r
}

func decodeNumber(raw json.RawMessage) NullableNumber {
	var n NullableNumber
	_ = n.UnmarshalJSON(raw)
	return n
}

func decodeString(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeForecastText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var object forecastTextDTO
	if err := json.Unmarshal(raw, &object); err == nil {
		if object.Text != "" {
			return object.Text
		}
		return object.Summary
	}
	return ""
}

// NullableNumber decodes a JSON number or numeric string; anything else leaves it unset
type NullableNumber struct {
	Value *float64
}

func (n *NullableNumber) UnmarshalJSON(data []byte) error {
	n.Value = nil
	if isNull(data) {
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		n.Value = &number
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			n.Value = &parsed
		}
	}
	return nil
}

package forecast

import (
	"bytes"
	"encoding/json"
	"fmt"

	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/gateway/api"
	"beach-cleanup/internal/domain/model/external"
)

// Normalize probes the raw body against the known layouts, in order:
// data.records[0] then items[0], and converts the matched record's periods.
func Normalize(body json.RawMessage) (entity.ForecastSet, error) {
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: invalid JSON body", api.ErrParse)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: top level is not an object", ErrShapeMismatch)
	}

	record, ok := firstRecord(envelope)
	if !ok {
		return nil, ErrShapeMismatch
	}

	var dto external.ForecastRecordDTO
	if err := json.Unmarshal(record, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	if len(dto.Forecasts) == 0 {
		return nil, ErrEmptyForecast
	}

	forecast := make(entity.ForecastSet, 0, len(dto.Forecasts))
	for _, period := range dto.Forecasts {
		forecast = append(forecast, entity.ForecastPeriod{
			Date:          period.Date,
			ConditionText: period.Forecast,
			TempHigh:      period.Temperature.High.Value,
			TempLow:       period.Temperature.Low.Value,
			HumidityHigh:  period.RelativeHumidity.High.Value,
			WindSpeedHigh: period.WindSpeed.High.Value,
		})
	}
	return forecast, nil
}

// firstRecord returns the first element of data.records, else of items.
func firstRecord(envelope map[string]json.RawMessage) (json.RawMessage, bool) {
	if data, ok := envelope["data"]; ok {
		var shapeA external.ForecastDataDTO
		if err := json.Unmarshal(data, &shapeA); err == nil && len(shapeA.Records) > 0 {
			return shapeA.Records[0], true
		}
	}

	if items, ok := envelope["items"]; ok {
		var shapeB []json.RawMessage
		if err := json.Unmarshal(items, &shapeB); err == nil && len(shapeB) > 0 {
			return shapeB[0], true
		}
	}

	return nil, false
}

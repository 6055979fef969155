package weather

import "fmt"

// recordFromForecast takes the first point of the series. Only a missing or
// empty series is an error; missing sub-fields fall back to defaults.
func recordFromForecast(resp *forecastResponse) (*Record, error) {
	if resp == nil || len(resp.List) == 0 {
		return nil, fmt.Errorf("forecast series is empty")
	}
	p := resp.List[0]
	return buildRecord(p.Main, p.Weather, p.Wind), nil
}

func recordFromCurrent(resp *currentResponse) *Record {
	if resp == nil {
		return buildRecord(nil, nil, nil)
	}
	return buildRecord(resp.Main, resp.Weather, resp.Wind)
}

func buildRecord(m *mainBlock, conditions conditionList, w *windBlock) *Record {
	r := &Record{Description: Unknown, Condition: Unknown}
	if m != nil {
		r.Temperature = floatOr(m.Temp, 0)
		r.Humidity = floatOr(m.Humidity, 0)
	}
	if len(conditions) > 0 {
		r.Description = stringOr(conditions[0].Description, Unknown)
		r.Condition = stringOr(conditions[0].Main, Unknown)
	}
	if w != nil {
		r.WindSpeed = floatOr(w.Speed, 0)
	}
	return r
}

func floatOr(v lenientFloat, def float64) float64 {
	if !v.ok {
		return def
	}
	return v.v
}

func stringOr(v lenientString, def string) string {
	if !v.ok {
		return def
	}
	return v.v
}

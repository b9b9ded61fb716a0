package external

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber accepts a JSON number or a numeric string. The BMKG feed is not
// consistent about which one it emits, and sometimes omits fields entirely.
type FlexNumber struct {
	Value float64
	Valid bool
}

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	f.Value = 0
	f.Valid = false

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f.Value = value
		f.Valid = true
		return nil
	}

	var value float64
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil
	}
	f.Value = value
	f.Valid = true
	return nil
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// RawForecastEntry is one hourly forecast slot as served by the BMKG feed.
type RawForecastEntry struct {
	Temperature   FlexNumber `json:"t"`
	Humidity      FlexNumber `json:"hu"`
	WindSpeed     FlexNumber `json:"ws"`
	WindDegree    FlexNumber `json:"wd_deg"`
	WindCompass   string     `json:"wd"`
	WeatherCode   FlexNumber `json:"weather"`
	WeatherDesc   string     `json:"weather_desc"`
	Datetime      string     `json:"datetime"`
	LocalDatetime string     `json:"local_datetime"`
}

// ForecastList tolerates both shapes the feed uses for the cuaca field:
// a flat list of entries, or a list of per-day lists.
type ForecastList []RawForecastEntry

func (fl *ForecastList) UnmarshalJSON(data []byte) error {
	*fl = nil

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}

	for _, element := range elements {
		trimmed := bytes.TrimSpace(element)
		if len(trimmed) == 0 {
			continue
		}
		if trimmed[0] == '[' {
			var day []RawForecastEntry
			if err := json.Unmarshal(trimmed, &day); err != nil {
				return err
			}
			*fl = append(*fl, day...)
			continue
		}
		var entry RawForecastEntry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			return err
		}
		*fl = append(*fl, entry)
	}

	return nil
}

// ForecastGroup is one location block inside the feed response.
type ForecastGroup struct {
	Lokasi map[string]any `json:"lokasi"`
	Cuaca  ForecastList   `json:"cuaca"`
}

// ForecastResponse is the top-level payload of the prakiraan-cuaca endpoint.
type ForecastResponse struct {
	Lokasi map[string]any  `json:"lokasi"`
	Data   []ForecastGroup `json:"data"`
}

// Flatten merges every forecast slot across all location blocks into one list.
func (r *ForecastResponse) Flatten() []RawForecastEntry {
	var entries []RawForecastEntry
	for _, group := range r.Data {
		entries = append(entries, group.Cuaca...)
	}
	return entries
}

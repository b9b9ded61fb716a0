package weather

import (
	"testing"
	"time"

	"pesisir-api/internal/domain/model/external"
)

func num(v float64) external.FlexNumber {
	return external.FlexNumber{Value: v, Valid: true}
}

func missing() external.FlexNumber {
	return external.FlexNumber{}
}

func TestNormalizeRoundsAndFormatsValues(t *testing.T) {
	entry := &external.RawForecastEntry{
		Temperature: num(27.6),
		Humidity:    num(75),
		WindSpeed:   num(10.4),
		WindDegree:  num(90),
		WeatherCode: num(61),
		Datetime:    "2026-08-28T06:00:00Z",
	}

	got := Normalize(entry, time.Date(2026, 8, 28, 6, 30, 0, 0, time.UTC))

	if got.Temperature != "28°C" {
		t.Errorf("temperature = %q, want 28°C", got.Temperature)
	}
	if got.Humidity != "75%" {
		t.Errorf("humidity = %q, want 75%%", got.Humidity)
	}
	if got.WindSpeed != "10 km/h" {
		t.Errorf("wind speed = %q, want 10 km/h", got.WindSpeed)
	}
	if got.WeatherCondition != "Hujan Sedang" {
		t.Errorf("condition = %q, want Hujan Sedang", got.WeatherCondition)
	}
	if got.WindDirection != "Timur" {
		t.Errorf("wind direction = %q, want Timur", got.WindDirection)
	}
	if got.LastUpdate != "2026-08-28T06:00:00Z" {
		t.Errorf("last update = %q, want entry datetime", got.LastUpdate)
	}
}

func TestNormalizeMissingValues(t *testing.T) {
	now := time.Date(2026, 8, 28, 6, 30, 0, 0, time.UTC)
	entry := &external.RawForecastEntry{
		Temperature: missing(),
		Humidity:    missing(),
		WindSpeed:   missing(),
		WindDegree:  missing(),
		WeatherCode: missing(),
	}

	got := Normalize(entry, now)

	for name, value := range map[string]string{
		"temperature":   got.Temperature,
		"humidity":      got.Humidity,
		"windSpeed":     got.WindSpeed,
		"windDirection": got.WindDirection,
	} {
		if value != NotAvailable {
			t.Errorf("%s = %q, want %q", name, value, NotAvailable)
		}
	}
	if got.WeatherCondition != "Cerah Berawan" {
		t.Errorf("condition = %q, want default Cerah Berawan", got.WeatherCondition)
	}
	if got.LastUpdate != now.Format(time.RFC3339) {
		t.Errorf("last update = %q, want now", got.LastUpdate)
	}
}

func TestNormalizeNilEntryIsFallback(t *testing.T) {
	now := time.Date(2026, 8, 28, 6, 30, 0, 0, time.UTC)
	got := Normalize(nil, now)

	if got.WeatherCondition != FallbackCondition {
		t.Errorf("condition = %q, want %q", got.WeatherCondition, FallbackCondition)
	}
	if got.Temperature != NotAvailable {
		t.Errorf("temperature = %q, want %q", got.Temperature, NotAvailable)
	}
}

func TestNormalizePrefersUpstreamText(t *testing.T) {
	entry := &external.RawForecastEntry{
		WeatherDesc: "Hujan Ringan",
		WindCompass: "Tenggara",
		WeatherCode: num(0),
		WindDegree:  num(90),
	}

	got := Normalize(entry, time.Date(2026, 8, 28, 6, 30, 0, 0, time.UTC))

	if got.WeatherCondition != "Hujan Ringan" {
		t.Errorf("condition = %q, want upstream Hujan Ringan", got.WeatherCondition)
	}
	if got.WindDirection != "Tenggara" {
		t.Errorf("wind direction = %q, want upstream Tenggara", got.WindDirection)
	}
}

func TestTranslateCondition(t *testing.T) {
	tests := []struct {
		name string
		desc string
		code external.FlexNumber
		want string
	}{
		{"cerah", "", num(0), "Cerah"},
		{"berawan tebal", "", num(4), "Berawan Tebal"},
		{"kabut", "", num(45), "Kabut"},
		{"hujan petir", "", num(97), "Hujan Petir"},
		{"unknown code", "", num(999), "Cerah Berawan"},
		{"missing code", "", missing(), "Cerah Berawan"},
		{"feed text wins over code", "Hujan Ringan", num(0), "Hujan Ringan"},
		{"feed text without code", "Berawan", missing(), "Berawan"},
		{"whitespace text ignored", "   ", num(45), "Kabut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateCondition(tt.desc, tt.code); got != tt.want {
				t.Errorf("translateCondition = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateWindDirection(t *testing.T) {
	tests := []struct {
		name    string
		compass string
		degree  external.FlexNumber
		want    string
	}{
		{"north", "", num(0), "Utara"},
		{"wraps back to north", "", num(359), "Utara"},
		{"east", "", num(90), "Timur"},
		{"southwest", "", num(225), "Barat Daya"},
		{"northwest", "", num(315), "Barat Laut"},
		{"over full circle", "", num(450), "Timur"},
		{"missing degree", "", missing(), NotAvailable},
		{"feed compass wins over degree", "Tenggara", num(0), "Tenggara"},
		{"feed compass without degree", "Barat", missing(), "Barat"},
		{"whitespace compass ignored", "   ", num(90), "Timur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateWindDirection(tt.compass, tt.degree); got != tt.want {
				t.Errorf("translateWindDirection = %q, want %q", got, tt.want)
			}
		})
	}
}

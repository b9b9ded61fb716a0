package weather

import (
	"fmt"
	"math"
	"strings"
	"time"

	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/model/external"
	"pesisir-api/pkg/util/numberutils"
)

const (
	// NotAvailable marks a display value that could not be derived.
	NotAvailable = "N/A"
	// FallbackCondition replaces the weather text when no data exists.
	FallbackCondition = "Data Tidak Tersedia"
	// defaultCondition is used for unknown BMKG weather codes.
	defaultCondition = "Cerah Berawan"
)

// weatherCodes maps BMKG weather codes to their Indonesian descriptions.
var weatherCodes = map[int]string{
	0:  "Cerah",
	1:  "Cerah Berawan",
	2:  "Cerah Berawan",
	3:  "Berawan",
	4:  "Berawan Tebal",
	5:  "Udara Kabur",
	10: "Asap",
	45: "Kabut",
	60: "Hujan Ringan",
	61: "Hujan Sedang",
	63: "Hujan Lebat",
	80: "Hujan Lokal",
	95: "Hujan Petir",
	97: "Hujan Petir",
}

// compassDirections covers the eight 45-degree sectors starting at north.
var compassDirections = [8]string{
	"Utara", "Timur Laut", "Timur", "Tenggara",
	"Selatan", "Barat Daya", "Barat", "Barat Laut",
}

// Normalize converts one raw forecast slot into the display-ready snapshot.
// A nil entry yields the full fallback record.
func Normalize(entry *external.RawForecastEntry, now time.Time) model.NormalizedWeather {
	if entry == nil {
		return Fallback(now)
	}

	return model.NormalizedWeather{
		WeatherCondition: translateCondition(entry.WeatherDesc, entry.WeatherCode),
		Temperature:      formatValue(entry.Temperature, "%d°C"),
		Humidity:         formatValue(entry.Humidity, "%d%%"),
		WindSpeed:        formatValue(entry.WindSpeed, "%d km/h"),
		WindDirection:    translateWindDirection(entry.WindCompass, entry.WindDegree),
		LastUpdate:       lastUpdate(entry, now),
	}
}

// Fallback returns the record served when no forecast is available.
func Fallback(now time.Time) model.NormalizedWeather {
	return model.NormalizedWeather{
		WeatherCondition: FallbackCondition,
		Temperature:      NotAvailable,
		Humidity:         NotAvailable,
		WindSpeed:        NotAvailable,
		WindDirection:    NotAvailable,
		LastUpdate:       now.Format(time.RFC3339),
	}
}

// translateCondition resolves the weather text. The feed's own description
// wins when present; otherwise the numeric code table decides. Unknown or
// missing codes fall back to the most common condition.
func translateCondition(desc string, code external.FlexNumber) string {
	if trimmed := strings.TrimSpace(desc); trimmed != "" {
		return trimmed
	}
	if !code.Valid {
		return defaultCondition
	}
	if desc, ok := weatherCodes[numberutils.RoundToInt(code.Value)]; ok {
		return desc
	}
	return defaultCondition
}

// translateWindDirection prefers the feed's compass name and otherwise
// converts wind degrees into one of eight compass sectors. Degrees are folded
// into [0, 360) before bucketing, so 359 is Utara.
func translateWindDirection(compass string, degree external.FlexNumber) string {
	if trimmed := strings.TrimSpace(compass); trimmed != "" {
		return trimmed
	}
	if !degree.Valid {
		return NotAvailable
	}

	folded := math.Mod(degree.Value, 360)
	if folded < 0 {
		folded += 360
	}

	index := numberutils.RoundToInt(folded/45) % 8
	return compassDirections[index]
}

// formatValue rounds a numeric reading and applies the unit format.
func formatValue(value external.FlexNumber, format string) string {
	if !value.Valid {
		return NotAvailable
	}
	return fmt.Sprintf(format, numberutils.RoundToInt(value.Value))
}

func lastUpdate(entry *external.RawForecastEntry, now time.Time) string {
	if entry.Datetime != "" {
		return entry.Datetime
	}
	return now.Format(time.RFC3339)
}

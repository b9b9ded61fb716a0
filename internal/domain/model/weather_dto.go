package model

import (
	"fmt"

	"pesisir-api/internal/domain/entity"
)

// NormalizedWeather is the display-ready weather snapshot for a beach.
// Numeric fields are already formatted with their units; missing values
// carry the "N/A" sentinel.
type NormalizedWeather struct {
	WeatherCondition string `json:"weatherCondition"`
	Temperature      string `json:"temperature"`
	Humidity         string `json:"humidity"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
	LastUpdate       string `json:"lastUpdate"`
}

// FailureKind classifies why a forecast could not be produced.
type FailureKind int

const (
	// FailureTransport covers unreachable upstream and non-2xx responses.
	FailureTransport FailureKind = iota
	// FailureUpstreamData covers 2xx responses whose payload is unusable.
	FailureUpstreamData
)

// UpstreamError is returned when the BMKG feed fails for a location.
type UpstreamError struct {
	Kind       FailureKind
	RegionCode string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case FailureUpstreamData:
		return fmt.Sprintf("unusable forecast payload for region %s: %v", e.RegionCode, e.Err)
	default:
		return fmt.Sprintf("bmkg unreachable for region %s: %v", e.RegionCode, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// PreloadReport aggregates the outcome of warming every location.
type PreloadReport struct {
	Succeeded []entity.LocationKey `json:"succeeded"`
	Failed    []entity.LocationKey `json:"failed"`
}

// RefreshJob is the queue message asking a worker to refresh one location.
type RefreshJob struct {
	Location  entity.LocationKey `json:"location"`
	RequestID string             `json:"requestId"`
}

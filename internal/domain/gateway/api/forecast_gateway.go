package api

import (
	"pesisir-api/internal/domain/model/external"
)

// ForecastGateway defines the interface for the BMKG public forecast API
type ForecastGateway interface {
	// GetForecast fetches the hourly forecast for a level-4 administrative
	// region. Failures are reported as *model.UpstreamError so callers can
	// distinguish connectivity problems from unusable payloads.
	GetForecast(regionCode string) (*external.ForecastResponse, error)
}

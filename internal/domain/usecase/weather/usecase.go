package weather

import (
	"errors"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model"
)

// ErrUnknownLocation is returned for location keys outside the monitored set.
var ErrUnknownLocation = errors.New("unknown beach location")

// UseCase drives the fetch, cache and normalization pipeline for the
// BMKG forecast feed.
type UseCase interface {
	// FetchWeather returns the current normalized snapshot for a beach,
	// serving from cache while the record is fresh.
	FetchWeather(location entity.LocationKey) (*model.NormalizedWeather, error)

	// PreloadAll warms the cache for every monitored beach concurrently.
	// One failing location never blocks the others.
	PreloadAll() *model.PreloadReport

	// RefreshAllScheduled refreshes every location, fanning the work out
	// through the queue when one is configured.
	RefreshAllScheduled(requestID string)

	// RefreshLocation re-fetches one location unconditionally, ignoring
	// cache freshness.
	RefreshLocation(location entity.LocationKey) error
}

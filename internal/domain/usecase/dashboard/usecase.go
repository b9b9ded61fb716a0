package dashboard

import (
	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model"
)

// UseCase assembles the full conditions panel for a beach.
type UseCase interface {
	// Render merges the simulated oceanographic constants with the live
	// weather snapshot. When the weather pipeline fails the panel still
	// renders, carrying the fallback weather block and offline status.
	Render(location entity.LocationKey) (*model.DashboardView, error)

	// Locations lists every monitored beach.
	Locations() []entity.Beach
}

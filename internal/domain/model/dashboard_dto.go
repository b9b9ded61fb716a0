package model

import "pesisir-api/internal/domain/entity"

// DataStatus tells the client whether the weather block carries live data.
type DataStatus string

const (
	DataStatusOnline  DataStatus = "online"
	DataStatusOffline DataStatus = "offline"
)

// DashboardView is the full conditions panel for one beach: real-time
// weather merged with the simulated oceanographic constants.
type DashboardView struct {
	Location entity.LocationKey     `json:"location"`
	Name     string                 `json:"name"`
	Coords   []float64              `json:"coords"`
	Weather  NormalizedWeather      `json:"weather"`
	Ocean    entity.OceanConditions `json:"ocean"`
	Status   DataStatus             `json:"status"`
	Notice   string                 `json:"notice"`
	Caveat   string                 `json:"caveat"`
}

package db

import "pesisir-api/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}

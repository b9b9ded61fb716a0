package health

import "pesisir-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}

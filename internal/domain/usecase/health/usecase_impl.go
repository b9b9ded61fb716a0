package health

import (
	"pesisir-api/internal/domain/gateway/db"
	"pesisir-api/internal/domain/gateway/queue"
	"pesisir-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		queueGateway: queueGateway,
	}
}

// CheckHealth aggregates component health. An UNKNOWN queue (no workers
// registered, queue-driven refresh disabled) does not degrade the overall
// status; only a component reporting DOWN does.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	queueHealth := useCase.queueGateway.Health()

	overallStatus := model.StatusUp
	if dbHealth.Status == model.StatusDown || queueHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Queue:    queueHealth,
	}
}

package processor

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/usecase/weather"
	"pesisir-api/pkg/log"
)

// RefreshProcessor consumes refresh jobs fanned out by the scheduled refresh
// and re-fetches one beach per message.
type RefreshProcessor struct {
	weatherUseCase weather.UseCase
}

func NewRefreshProcessor(weatherUseCase weather.UseCase) *RefreshProcessor {
	return &RefreshProcessor{
		weatherUseCase: weatherUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *RefreshProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var job model.RefreshJob
	if err := json.Unmarshal([]byte(*msg.Body), &job); err != nil {
		return fmt.Errorf("failed to unmarshal refresh job: %w", err)
	}

	log.Infof("Processing refresh job for %s (request %s)", job.Location, job.RequestID)

	if err := p.weatherUseCase.RefreshLocation(job.Location); err != nil {
		return fmt.Errorf("failed to refresh weather for %s: %w", job.Location, err)
	}

	return nil
}

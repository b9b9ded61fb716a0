package weather

import (
	"fmt"
	"sync"
	"time"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/gateway/api"
	"pesisir-api/internal/domain/gateway/queue"
	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/model/external"
	"pesisir-api/pkg/log"

	"go.uber.org/zap"
)

type weatherUseCase struct {
	apiGateway  api.ForecastGateway
	cache       *Cache
	queueSender queue.Sender
	queueName   string
	now         func() time.Time
}

// NewWeatherUseCase wires the pipeline. queueSender may be nil, in which case
// scheduled refreshes run in-process instead of fanning out through the queue.
func NewWeatherUseCase(apiGateway api.ForecastGateway, cache *Cache, queueSender queue.Sender, queueName string) UseCase {
	return &weatherUseCase{
		apiGateway:  apiGateway,
		cache:       cache,
		queueSender: queueSender,
		queueName:   queueName,
		now:         time.Now,
	}
}

// FetchWeather returns the normalized snapshot for a beach, fetching from the
// BMKG feed only when the cached record has left the freshness window.
func (uc *weatherUseCase) FetchWeather(location entity.LocationKey) (*model.NormalizedWeather, error) {
	beach, ok := entity.BeachByKey(location)
	if !ok {
		return nil, ErrUnknownLocation
	}

	if entries, hit := uc.cache.Get(location); hit {
		return uc.normalizeEntries(entries, beach.RegionCode)
	}

	entries, err := uc.fetchAndStore(beach)
	if err != nil {
		return nil, err
	}

	return uc.normalizeEntries(entries, beach.RegionCode)
}

// RefreshLocation re-fetches one location unconditionally, ignoring freshness.
func (uc *weatherUseCase) RefreshLocation(location entity.LocationKey) error {
	beach, ok := entity.BeachByKey(location)
	if !ok {
		return ErrUnknownLocation
	}

	_, err := uc.fetchAndStore(beach)
	return err
}

// PreloadAll warms every location concurrently. A failing location is
// reported but never blocks the others.
func (uc *weatherUseCase) PreloadAll() *model.PreloadReport {
	var wg sync.WaitGroup
	var mutex sync.Mutex
	report := &model.PreloadReport{
		Succeeded: []entity.LocationKey{},
		Failed:    []entity.LocationKey{},
	}

	for _, location := range entity.AllLocationKeys() {
		wg.Add(1)
		go func(location entity.LocationKey) {
			defer wg.Done()

			_, err := uc.FetchWeather(location)

			mutex.Lock()
			defer mutex.Unlock()
			if err != nil {
				log.Warn("Failed to preload weather",
					zap.String("location", string(location)),
					zap.Error(err))
				report.Failed = append(report.Failed, location)
				return
			}
			report.Succeeded = append(report.Succeeded, location)
		}(location)
	}

	wg.Wait()

	log.Info("Weather preload finished",
		zap.Int("succeeded", len(report.Succeeded)),
		zap.Int("failed", len(report.Failed)))
	return report
}

// RefreshAllScheduled refreshes every location. With a queue configured each
// location becomes one message so workers share the load; otherwise the
// refresh runs in-process.
func (uc *weatherUseCase) RefreshAllScheduled(requestID string) {
	if uc.queueSender == nil || uc.queueName == "" {
		log.Info("Refreshing all locations in-process", zap.String("request_id", requestID))
		uc.PreloadAll()
		return
	}

	locations := entity.AllLocationKeys()
	messages := make([]queue.BatchMessage, len(locations))
	for i, location := range locations {
		messages[i] = queue.BatchMessage{
			MessageID: fmt.Sprintf("refresh-%s-%s", requestID, location),
			Body: model.RefreshJob{
				Location:  location,
				RequestID: requestID,
			},
		}
	}

	result, err := uc.queueSender.SendMessageBatch(uc.queueName, messages)
	if err != nil {
		log.Warn("Failed to enqueue refresh jobs, falling back to in-process refresh",
			zap.String("request_id", requestID),
			zap.Error(err))
		uc.PreloadAll()
		return
	}

	for _, failedID := range result.Failed {
		log.Warn("Failed to enqueue refresh job",
			zap.String("request_id", requestID),
			zap.String("message_id", failedID))
	}
	log.Info("Refresh jobs enqueued",
		zap.String("request_id", requestID),
		zap.Int("enqueued", len(result.Successful)),
		zap.Int("failed", len(result.Failed)))
}

// fetchAndStore pulls the forecast, validates it and stores the flattened
// entries. A failed fetch or an unusable payload never touches the cache.
func (uc *weatherUseCase) fetchAndStore(beach entity.Beach) ([]external.RawForecastEntry, error) {
	response, err := uc.apiGateway.GetForecast(beach.RegionCode)
	if err != nil {
		return nil, err
	}

	entries := response.Flatten()
	if len(entries) == 0 {
		return nil, &model.UpstreamError{
			Kind:       model.FailureUpstreamData,
			RegionCode: beach.RegionCode,
			Err:        fmt.Errorf("forecast response carries no slots"),
		}
	}

	// The record must be selectable before it is worth caching.
	if _, err := SelectNearest(entries, uc.now()); err != nil {
		return nil, &model.UpstreamError{
			Kind:       model.FailureUpstreamData,
			RegionCode: beach.RegionCode,
			Err:        err,
		}
	}

	uc.cache.Put(beach.Key, entries)
	return entries, nil
}

// normalizeEntries selects the slot nearest to now and normalizes it.
func (uc *weatherUseCase) normalizeEntries(entries []external.RawForecastEntry, regionCode string) (*model.NormalizedWeather, error) {
	slot, err := SelectNearest(entries, uc.now())
	if err != nil {
		return nil, &model.UpstreamError{
			Kind:       model.FailureUpstreamData,
			RegionCode: regionCode,
			Err:        err,
		}
	}

	normalized := Normalize(slot, uc.now())
	return &normalized, nil
}

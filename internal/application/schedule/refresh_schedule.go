package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"pesisir-api/internal/domain/usecase/weather"
	"pesisir-api/pkg/log"
	"pesisir-api/pkg/msg"
	"pesisir-api/pkg/redis"
	"pesisir-api/pkg/resource"
)

const refreshLockKey = "weather_refresh_scheduler"

// RefreshScheduler re-warms the forecast cache on a fixed cadence. With a
// redis client configured, a distributed lock keeps multiple instances from
// refreshing at the same time; the instance that loses the lock skips the run.
type RefreshScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	lockTTL     time.Duration
}

func NewRefreshScheduler(useCase weather.UseCase, redisClient *redis.Client) *RefreshScheduler {
	return &RefreshScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		lockTTL:     resource.GetDuration("app.weather.cache-ttl"),
	}
}

// InitRefreshScheduleTasks initializes the periodic forecast refresh
func (scheduler *RefreshScheduler) InitRefreshScheduleTasks() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.weather.refresh.cron"), scheduler.RefreshAllLocations)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

func (scheduler *RefreshScheduler) RefreshAllLocations() {
	requestID := uuid.New().String()

	if scheduler.redisClient != nil {
		lock := redis.NewLock(scheduler.redisClient, refreshLockKey, scheduler.lockTTL)
		acquired, err := lock.TryLock(context.Background())
		if err != nil {
			log.Errorf("Failed to check refresh lock: %v", err)
			return
		}
		if !acquired {
			log.Info(msg.GetMessage("weather.cron.skip", requestID))
			return
		}
	}

	log.Info(msg.GetMessage("weather.cron.start", requestID))
	scheduler.useCase.RefreshAllScheduled(requestID)
	log.Info(msg.GetMessage("weather.cron.end", requestID))
}

// Stop gracefully stops the scheduler
func (scheduler *RefreshScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
}

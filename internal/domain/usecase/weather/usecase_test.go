package weather

import (
	"errors"
	"sync"
	"testing"
	"time"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/gateway/queue"
	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/model/external"
)

type fakeForecastGateway struct {
	mutex   sync.Mutex
	calls   map[string]int
	failing map[string]error
	entries []external.RawForecastEntry
}

func newFakeGateway(entries []external.RawForecastEntry) *fakeForecastGateway {
	return &fakeForecastGateway{
		calls:   make(map[string]int),
		failing: make(map[string]error),
		entries: entries,
	}
}

func (f *fakeForecastGateway) GetForecast(regionCode string) (*external.ForecastResponse, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.calls[regionCode]++
	if err, ok := f.failing[regionCode]; ok {
		return nil, err
	}
	return &external.ForecastResponse{
		Data: []external.ForecastGroup{{Cuaca: f.entries}},
	}, nil
}

func (f *fakeForecastGateway) callCount(regionCode string) int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.calls[regionCode]
}

func (f *fakeForecastGateway) failRegion(regionCode string, err error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.failing[regionCode] = err
}

type fakeSender struct {
	mutex     sync.Mutex
	queueName string
	messages  []queue.BatchMessage
	err       error
}

func (f *fakeSender) SendMessage(queueName string, body any) error {
	return f.err
}

func (f *fakeSender) SendMessageBatch(queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	f.queueName = queueName
	f.messages = append(f.messages, messages...)

	successful := make([]string, len(messages))
	for i, m := range messages {
		successful[i] = m.MessageID
	}
	return &queue.BatchResult{Successful: successful, Failed: []string{}}, nil
}

func fixedTime() time.Time {
	return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
}

func testEntries() []external.RawForecastEntry {
	return []external.RawForecastEntry{
		{Datetime: "2026-08-28T09:00:00Z", Temperature: num(27.6), Humidity: num(75), WindSpeed: num(10.4), WindDegree: num(90), WeatherCode: num(1)},
		{Datetime: "2026-08-28T12:00:00Z", Temperature: num(30), Humidity: num(70), WindSpeed: num(12), WindDegree: num(180), WeatherCode: num(3)},
	}
}

func newTestUseCase(gateway *fakeForecastGateway, sender queue.Sender, queueName string) (*weatherUseCase, *Cache) {
	cache := NewCacheWithClock(30*time.Minute, fixedTime)
	uc := NewWeatherUseCase(gateway, cache, sender, queueName).(*weatherUseCase)
	uc.now = fixedTime
	return uc, cache
}

func TestFetchWeatherNormalizesNearestSlot(t *testing.T) {
	gateway := newFakeGateway(testEntries())
	uc, _ := newTestUseCase(gateway, nil, "")

	got, err := uc.FetchWeather(entity.Anyer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10:00 is closer to the 09:00 slot than to 12:00.
	if got.Temperature != "28°C" {
		t.Errorf("temperature = %q, want 28°C", got.Temperature)
	}
	if got.WeatherCondition != "Cerah Berawan" {
		t.Errorf("condition = %q, want Cerah Berawan", got.WeatherCondition)
	}
	if got.WindDirection != "Timur" {
		t.Errorf("wind direction = %q, want Timur", got.WindDirection)
	}
}

func TestFetchWeatherServesFromCache(t *testing.T) {
	gateway := newFakeGateway(testEntries())
	uc, _ := newTestUseCase(gateway, nil, "")

	if _, err := uc.FetchWeather(entity.Anyer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.FetchWeather(entity.Anyer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	beach, _ := entity.BeachByKey(entity.Anyer)
	if calls := gateway.callCount(beach.RegionCode); calls != 1 {
		t.Errorf("gateway calls = %d, want 1 (second read should hit the cache)", calls)
	}
}

func TestFetchWeatherUnknownLocation(t *testing.T) {
	gateway := newFakeGateway(testEntries())
	uc, _ := newTestUseCase(gateway, nil, "")

	_, err := uc.FetchWeather("atlantis")
	if !errors.Is(err, ErrUnknownLocation) {
		t.Fatalf("err = %v, want ErrUnknownLocation", err)
	}
}

func TestFetchWeatherFailureDoesNotTouchCache(t *testing.T) {
	gateway := newFakeGateway(testEntries())
	uc, cache := newTestUseCase(gateway, nil, "")

	beach, _ := entity.BeachByKey(entity.Carita)
	gateway.failRegion(beach.RegionCode, &model.UpstreamError{
		Kind:       model.FailureTransport,
		RegionCode: beach.RegionCode,
		Err:        errors.New("connection refused"),
	})

	_, err := uc.FetchWeather(entity.Carita)
	if err == nil {
		t.Fatal("expected error from failing gateway")
	}

	var upstreamErr *model.UpstreamError
	if !errors.As(err, &upstreamErr) || upstreamErr.Kind != model.FailureTransport {
		t.Fatalf("err = %v, want transport-class UpstreamError", err)
	}
	if _, ok := cache.FetchedAt(entity.Carita); ok {
		t.Error("cache must stay untouched after a failed fetch")
	}
}

func TestFetchWeatherEmptyForecastIsDataFailure(t *testing.T) {
	gateway := newFakeGateway(nil)
	uc, cache := newTestUseCase(gateway, nil, "")

	_, err := uc.FetchWeather(entity.Labuan)

	var upstreamErr *model.UpstreamError
	if !errors.As(err, &upstreamErr) || upstreamErr.Kind != model.FailureUpstreamData {
		t.Fatalf("err = %v, want data-class UpstreamError", err)
	}
	if _, ok := cache.FetchedAt(entity.Labuan); ok {
		t.Error("cache must stay untouched for unusable payloads")
	}
}

func TestPreloadAllIsolatesFailures(t *testing.T) {
	gateway := newFakeGateway(testEntries())
	uc, _ := newTestUseCase(gateway, nil, "")

	for _, location := range []entity.LocationKey{entity.Sawarna, entity.Bagedur} {
		beach, _ := entity.BeachByKey(location)
		gateway.failRegion(beach.RegionCode, &model.UpstreamError{
			Kind:       model.FailureTransport,
			RegionCode: beach.RegionCode,
			Err:        errors.New("timeout"),
		})
	}

	report := uc.PreloadAll()

	if len(report.Succeeded) != 4 {
		t.Errorf("succeeded = %d, want 4", len(report.Succeeded))
	}
	if len(report.Failed) != 2 {
		t.Errorf("failed = %d, want 2", len(report.Failed))
	}
}

func TestRefreshLocationBypassesFreshness(t *testing.T) {
	gateway := newFakeGateway(testEntries())
	uc, _ := newTestUseCase(gateway, nil, "")

	if _, err := uc.FetchWeather(entity.Anyer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.RefreshLocation(entity.Anyer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	beach, _ := entity.BeachByKey(entity.Anyer)
	if calls := gateway.callCount(beach.RegionCode); calls != 2 {
		t.Errorf("gateway calls = %d, want 2 (refresh must ignore the cache)", calls)
	}
}

func TestRefreshAllScheduledEnqueuesPerLocation(t *testing.T) {
	gateway := newFakeGateway(testEntries())
	sender := &fakeSender{}
	uc, _ := newTestUseCase(gateway, sender, "weather-refresh")

	uc.RefreshAllScheduled("req-123")

	if sender.queueName != "weather-refresh" {
		t.Errorf("queue = %q, want weather-refresh", sender.queueName)
	}
	if len(sender.messages) != len(entity.AllLocationKeys()) {
		t.Fatalf("messages = %d, want one per location", len(sender.messages))
	}

	job, ok := sender.messages[0].Body.(model.RefreshJob)
	if !ok {
		t.Fatalf("body type = %T, want model.RefreshJob", sender.messages[0].Body)
	}
	if job.RequestID != "req-123" {
		t.Errorf("requestID = %q, want req-123", job.RequestID)
	}
}

func TestRefreshAllScheduledWithoutQueueRunsInProcess(t *testing.T) {
	gateway := newFakeGateway(testEntries())
	uc, cache := newTestUseCase(gateway, nil, "")

	uc.RefreshAllScheduled("req-456")

	for _, location := range entity.AllLocationKeys() {
		if _, ok := cache.FetchedAt(location); !ok {
			t.Errorf("location %s not warmed by in-process refresh", location)
		}
	}
}

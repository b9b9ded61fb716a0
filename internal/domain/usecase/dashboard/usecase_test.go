package dashboard

import (
	"errors"
	"testing"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/usecase/weather"
)

type stubWeatherUseCase struct {
	snapshot *model.NormalizedWeather
	err      error
}

func (s *stubWeatherUseCase) FetchWeather(location entity.LocationKey) (*model.NormalizedWeather, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func (s *stubWeatherUseCase) PreloadAll() *model.PreloadReport       { return &model.PreloadReport{} }
func (s *stubWeatherUseCase) RefreshAllScheduled(requestID string)   {}
func (s *stubWeatherUseCase) RefreshLocation(entity.LocationKey) error { return nil }

func TestRenderOnline(t *testing.T) {
	snapshot := &model.NormalizedWeather{
		WeatherCondition: "Cerah",
		Temperature:      "28°C",
		Humidity:         "75%",
		WindSpeed:        "10 km/h",
		WindDirection:    "Timur",
		LastUpdate:       "2026-08-28T09:00:00Z",
	}
	uc := NewDashboardUseCase(&stubWeatherUseCase{snapshot: snapshot})

	view, err := uc.Render(entity.Anyer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Status != model.DataStatusOnline {
		t.Errorf("status = %q, want online", view.Status)
	}
	if view.Weather != *snapshot {
		t.Errorf("weather = %+v, want the live snapshot", view.Weather)
	}
	if view.Name != "Pantai Anyer" {
		t.Errorf("name = %q, want Pantai Anyer", view.Name)
	}
	if view.Ocean.TideStatus != "Pasang" {
		t.Errorf("tide status = %q, want Pasang", view.Ocean.TideStatus)
	}
	if len(view.Coords) != 2 || view.Coords[0] != -6.0879 {
		t.Errorf("coords = %v, want [-6.0879 105.8838]", view.Coords)
	}
}

func TestRenderOfflineFallback(t *testing.T) {
	uc := NewDashboardUseCase(&stubWeatherUseCase{
		err: &model.UpstreamError{Kind: model.FailureTransport, RegionCode: "36.04.30.2005", Err: errors.New("refused")},
	})

	view, err := uc.Render(entity.Anyer)
	if err != nil {
		t.Fatalf("panel must render despite weather failure, got %v", err)
	}

	if view.Status != model.DataStatusOffline {
		t.Errorf("status = %q, want offline", view.Status)
	}
	if view.Weather.WeatherCondition != weather.FallbackCondition {
		t.Errorf("condition = %q, want %q", view.Weather.WeatherCondition, weather.FallbackCondition)
	}
	if view.Weather.Temperature != weather.NotAvailable {
		t.Errorf("temperature = %q, want %q", view.Weather.Temperature, weather.NotAvailable)
	}
	// The simulated block is independent of the weather outcome.
	if view.Ocean.WaveHeight != "0.8 m" {
		t.Errorf("wave height = %q, want 0.8 m", view.Ocean.WaveHeight)
	}
}

func TestRenderUnknownLocation(t *testing.T) {
	uc := NewDashboardUseCase(&stubWeatherUseCase{})

	_, err := uc.Render("atlantis")
	if !errors.Is(err, weather.ErrUnknownLocation) {
		t.Fatalf("err = %v, want ErrUnknownLocation", err)
	}
}

func TestLocationsListsAllBeachesInOrder(t *testing.T) {
	uc := NewDashboardUseCase(&stubWeatherUseCase{})

	locations := uc.Locations()
	if len(locations) != 6 {
		t.Fatalf("len = %d, want 6", len(locations))
	}
	if locations[0].Key != entity.Anyer || locations[5].Key != entity.Bagedur {
		t.Errorf("order = %v, want anyer first and bagedur last", locations)
	}
	if locations[3].RegionCode != "36.01.06.2012" {
		t.Errorf("tanjunglesung region = %q, want 36.01.06.2012", locations[3].RegionCode)
	}
}

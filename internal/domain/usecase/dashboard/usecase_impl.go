package dashboard

import (
	"time"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/usecase/weather"
	"pesisir-api/pkg/log"
	"pesisir-api/pkg/msg"

	"go.uber.org/zap"
)

type dashboardUseCase struct {
	weatherUseCase weather.UseCase
	now            func() time.Time
}

func NewDashboardUseCase(weatherUseCase weather.UseCase) UseCase {
	return &dashboardUseCase{
		weatherUseCase: weatherUseCase,
		now:            time.Now,
	}
}

// Render builds the panel. The oceanographic block is always served; only
// the weather block degrades when the feed is unavailable.
func (uc *dashboardUseCase) Render(location entity.LocationKey) (*model.DashboardView, error) {
	beach, ok := entity.BeachByKey(location)
	if !ok {
		return nil, weather.ErrUnknownLocation
	}

	ocean, _ := entity.OceanConditionsByKey(location)

	view := &model.DashboardView{
		Location: beach.Key,
		Name:     beach.Name,
		Coords:   []float64{beach.Latitude, beach.Longitude},
		Ocean:    ocean,
		Caveat:   msg.GetMessage("dashboard.caveat"),
	}

	snapshot, err := uc.weatherUseCase.FetchWeather(location)
	if err != nil {
		log.Warn("Serving fallback weather block",
			zap.String("location", string(location)),
			zap.Error(err))
		view.Weather = weather.Fallback(uc.now())
		view.Status = model.DataStatusOffline
		view.Notice = msg.GetMessage("dashboard.status.offline")
		return view, nil
	}

	view.Weather = *snapshot
	view.Status = model.DataStatusOnline
	view.Notice = msg.GetMessage("dashboard.status.online")
	return view, nil
}

func (uc *dashboardUseCase) Locations() []entity.Beach {
	return entity.AllBeaches()
}

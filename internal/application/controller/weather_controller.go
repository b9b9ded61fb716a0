package controller

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/usecase/weather"
	"pesisir-api/pkg/msg"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/schedule", controller.RefreshAll)
	controller.api.GET("/weather/:location", controller.GetWeather)
}

// GetWeather godoc
// @Summary Get the normalized weather snapshot for a beach
// @Description Serves from the in-memory cache while the record is younger than the freshness window, otherwise fetches from the BMKG feed.
// @Tags weather
// @Produce json
// @Param location path string true "Beach location key" Enums(anyer, carita, sawarna, tanjunglesung, labuan, bagedur)
// @Success 200 {object} model.NormalizedWeather "Normalized snapshot"
// @Failure 404 {object} model.ErrorResponse "Unknown location"
// @Failure 502 {object} model.ErrorResponse "Unusable forecast payload"
// @Failure 503 {object} model.ErrorResponse "BMKG feed unreachable"
// @Router /weather/{location} [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	location := entity.LocationKey(c.Param("location"))

	snapshot, err := controller.useCase.FetchWeather(location)
	if err != nil {
		return controller.mapWeatherError(c, location, err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// RefreshAll godoc
// @Summary Trigger a refresh of every beach
// @Description Schedules a refresh for all monitored beaches and returns immediately. With a queue configured the refresh fans out to workers.
// @Tags weather
// @Produce json
// @Success 202 {object} map[string]string "Refresh accepted"
// @Router /weather/schedule [get]
func (controller *WeatherController) RefreshAll(c echo.Context) error {
	requestID := uuid.New().String()

	go controller.useCase.RefreshAllScheduled(requestID)

	return c.JSON(http.StatusAccepted, map[string]string{"requestId": requestID})
}

func (controller *WeatherController) mapWeatherError(c echo.Context, location entity.LocationKey, err error) error {
	if errors.Is(err, weather.ErrUnknownLocation) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": msg.GetMessage("weather.error.unknown-location", string(location)),
		})
	}

	var upstreamErr *model.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.Kind == model.FailureUpstreamData {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": msg.GetMessage("weather.error.no-data"),
		})
	}

	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"error": msg.GetMessage("weather.error.offline"),
	})
}

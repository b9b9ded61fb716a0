package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/usecase/dashboard"
	"pesisir-api/pkg/msg"
)

type DashboardController struct {
	api     *echo.Group
	useCase dashboard.UseCase
}

func NewDashboardController(api *echo.Group, useCase dashboard.UseCase) *DashboardController {
	return &DashboardController{api: api, useCase: useCase}
}

// InitDashboardRoutes initializes dashboard routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("/dashboard/:location", controller.RenderDashboard)
	controller.api.GET("/locations", controller.ListLocations)
}

// RenderDashboard godoc
// @Summary Get the conditions panel for a beach
// @Description Real-time BMKG weather merged with simulated oceanographic data. When the BMKG feed is unreachable the panel still renders with fallback weather values and offline status.
// @Tags dashboard
// @Produce json
// @Param location path string true "Beach location key" Enums(anyer, carita, sawarna, tanjunglesung, labuan, bagedur)
// @Success 200 {object} model.DashboardView "Conditions panel"
// @Failure 404 {object} model.ErrorResponse "Unknown location"
// @Router /dashboard/{location} [get]
func (controller *DashboardController) RenderDashboard(c echo.Context) error {
	location := entity.LocationKey(c.Param("location"))

	view, err := controller.useCase.Render(location)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": msg.GetMessage("weather.error.unknown-location", string(location)),
		})
	}

	return c.JSON(http.StatusOK, view)
}

// ListLocations godoc
// @Summary List the monitored beaches
// @Tags dashboard
// @Produce json
// @Success 200 {array} entity.Beach "Monitored beaches with region codes and coordinates"
// @Router /locations [get]
func (controller *DashboardController) ListLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Locations())
}

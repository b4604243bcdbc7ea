package main

import (
	"errors"
	"net/http"

	dashboard "clima/internal/app"
	"clima/internal/i18n"
	"clima/internal/location"
	"clima/internal/preferences"
	"clima/internal/types"
	"clima/internal/view"

	"github.com/gin-gonic/gin"
)

// DashboardResponse is the whole dashboard as currently shown
type DashboardResponse struct {
	Status      dashboard.Status        `json:"status" example:"ready"`
	Language    string                  `json:"language" example:"pt-BR"`
	Location    *types.Location         `json:"location,omitempty"`
	Preferences preferences.Preferences `json:"preferences"`
	LastError   string                  `json:"lastError,omitempty"`
	Screen      view.Screen             `json:"screen"`
	Strings     i18n.StringTable        `json:"strings"`
}

// ErrorResponse carries the failure and the notification shown for it
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty" example:"Cidade não encontrada"`
}

// SearchCityInput defines the query parameters for the city search endpoint
type SearchCityInput struct {
	City string `form:"city" binding:"required"` // City name as typed
}

// SearchCoordinatesInput defines the query parameters for the coordinates endpoint
type SearchCoordinatesInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleGetDashboard godoc
// @Summary Get the dashboard
// @Description Current render model, status, preferences and visible notification
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (app *App) handleGetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, app.dashboardResponse())
}

// handleSearchCity godoc
// @Summary Search a city
// @Description Geocode a city name, fetch its forecast and remember it as favorite
// @Tags dashboard
// @Produce json
// @Param city query string true "City name" example(Lisboa)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/search [post]
func (app *App) handleSearchCity(c *gin.Context) {
	var input SearchCityInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := app.controller.SearchCity(c.Request.Context(), input.City); err != nil {
		app.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.dashboardResponse())
}

// handleUseDeviceLocation godoc
// @Summary Use the device location
// @Description Locate the device and fetch its forecast, falling back to the default location when the position is unavailable
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/device [post]
func (app *App) handleUseDeviceLocation(c *gin.Context) {
	if err := app.controller.UseDeviceLocation(c.Request.Context()); err != nil {
		app.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.dashboardResponse())
}

// handleSearchCoordinates godoc
// @Summary Search by coordinates
// @Description Fetch the forecast for explicit coordinates
// @Tags dashboard
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(-23.5505)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-46.6333)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/coordinates [post]
func (app *App) handleSearchCoordinates(c *gin.Context) {
	var input SearchCoordinatesInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := app.controller.SearchCoordinates(c.Request.Context(), *input.Latitude, *input.Longitude); err != nil {
		app.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.dashboardResponse())
}

// handleRefresh godoc
// @Summary Refresh the forecast
// @Description Fetch the forecast again for the location on display
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/refresh [post]
func (app *App) handleRefresh(c *gin.Context) {
	if err := app.controller.Refresh(c.Request.Context()); err != nil {
		app.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.dashboardResponse())
}

func (app *App) dashboardResponse() DashboardResponse {
	state := app.controller.State()
	return DashboardResponse{
		Status:      state.Status,
		Language:    state.Language,
		Location:    state.Location,
		Preferences: state.Preferences,
		LastError:   state.LastError,
		Screen:      app.screen.Screen(),
		Strings:     app.controller.Strings(),
	}
}

// respondError maps the dashboard error taxonomy to a status code
func (app *App) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, location.ErrOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, location.ErrCityNotFound):
		status = http.StatusNotFound
	case errors.Is(err, location.ErrNetwork):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		app.logger.Error("dashboard request failed", "path", c.FullPath(), "error", err)
	}

	resp := ErrorResponse{Error: err.Error()}
	if n, ok := app.controller.Notification(); ok {
		resp.Message = n.Message
	}
	c.JSON(status, resp)
}

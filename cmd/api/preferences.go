package main

import (
	"net/http"

	"clima/internal/i18n"
	"clima/internal/preferences"

	"github.com/gin-gonic/gin"
)

// DarkModeInput is the body of the dark-mode endpoint
type DarkModeInput struct {
	DarkMode *bool `json:"darkMode" binding:"required"`
}

// LanguageInput is the body of the language endpoint. An empty language
// uses the request's Accept-Language header.
type LanguageInput struct {
	Language string `json:"language" example:"en"`
}

// LanguageResponse reports the active language and its strings
type LanguageResponse struct {
	Language string           `json:"language" example:"en"`
	Strings  i18n.StringTable `json:"strings"`
}

// handleGetPreferences godoc
// @Summary Get preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} preferences.Preferences
// @Router /preferences [get]
func (app *App) handleGetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, app.controller.State().Preferences)
}

// handleSetDarkMode godoc
// @Summary Set dark mode
// @Description Switch dark mode on or off and persist the choice
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body DarkModeInput true "Dark mode flag"
// @Success 200 {object} preferences.Preferences
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /preferences/dark-mode [put]
func (app *App) handleSetDarkMode(c *gin.Context) {
	var input DarkModeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := app.controller.SetDarkMode(c.Request.Context(), *input.DarkMode); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.currentPreferences())
}

// handleToggleDarkMode godoc
// @Summary Toggle dark mode
// @Tags preferences
// @Produce json
// @Success 200 {object} preferences.Preferences
// @Failure 500 {object} ErrorResponse
// @Router /preferences/dark-mode/toggle [post]
func (app *App) handleToggleDarkMode(c *gin.Context) {
	if _, err := app.controller.ToggleDarkMode(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.currentPreferences())
}

// handleSetLanguage godoc
// @Summary Set the UI language
// @Description Portuguese for any tag starting with "pt", English otherwise. Re-renders the current forecast without fetching.
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body LanguageInput false "Language tag"
// @Param Accept-Language header string false "Used when the body has no language"
// @Success 200 {object} LanguageResponse
// @Failure 400 {object} ErrorResponse
// @Router /language [put]
func (app *App) handleSetLanguage(c *gin.Context) {
	var input LanguageInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	tag := input.Language
	if tag == "" {
		tag = i18n.FromAcceptLanguage(c.GetHeader("Accept-Language"))
	}

	lang := app.controller.SetLanguage(tag)
	c.JSON(http.StatusOK, LanguageResponse{
		Language: lang,
		Strings:  app.controller.Strings(),
	})
}

func (app *App) currentPreferences() preferences.Preferences {
	return app.controller.State().Preferences
}

package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Dashboard endpoints
	dashboard := app.router.Group("/dashboard")
	dashboard.GET("", app.handleGetDashboard)
	dashboard.POST("/search", app.handleSearchCity)
	dashboard.POST("/device", app.handleUseDeviceLocation)
	dashboard.POST("/coordinates", app.handleSearchCoordinates)
	dashboard.POST("/refresh", app.handleRefresh)

	// Preference endpoints
	app.router.GET("/preferences", app.handleGetPreferences)
	app.router.PUT("/preferences/dark-mode", app.handleSetDarkMode)
	app.router.POST("/preferences/dark-mode/toggle", app.handleToggleDarkMode)
	app.router.PUT("/language", app.handleSetLanguage)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"clima/internal/config"
	"clima/internal/location"
	"clima/internal/preferences"
	"clima/internal/view"
	"clima/internal/weather"

	dashboard "clima/internal/app"

	"github.com/gin-gonic/gin"

	_ "clima/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router     *gin.Engine
	logger     *slog.Logger
	controller *dashboard.Controller
	screen     *view.Memory
	store      preferences.Store
	cfg        *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := preferences.NewSQLite(cfg.Preferences.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}

	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		store.Close()
		return nil, err
	}

	screen := view.NewMemory()
	controller := dashboard.NewController(cfg, location.NewLocationService(cfg, logger), weatherSvc, store, screen, logger)

	return newApp(cfg, logger, controller, screen, store), nil
}

func newApp(cfg *config.Config, logger *slog.Logger, controller *dashboard.Controller, screen *view.Memory, store preferences.Store) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:     router,
		logger:     logger,
		controller: controller,
		screen:     screen,
		store:      store,
		cfg:        cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Start shows the first forecast. The timeout covers the position lookup,
// the reverse lookup and the forecast. Failures are already on screen as
// notifications, so they are logged and the server starts anyway.
func (app *App) Start(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*app.cfg.Providers.Timeout)
	defer cancel()

	if err := app.controller.Start(ctx); err != nil {
		app.logger.Warn("initial forecast not available", "error", err)
	}
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

func (app *App) Close() error {
	return app.store.Close()
}

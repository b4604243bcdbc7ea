package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency

import (
	"context"
	"log"
	"log/slog"
	_ "time/tzdata" // forecast timezones must load on hosts without zoneinfo

	"clima/internal/config"

	"github.com/joho/godotenv"

	_ "clima/docs" // Import generated docs
)

// @title Clima API
// @version 1.0
// @description Weather dashboard: resolves a location, fetches its forecast from Open-Meteo and serves the rendered dashboard.
// @BasePath /
func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	defer app.Close()

	app.Start(context.Background())

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}

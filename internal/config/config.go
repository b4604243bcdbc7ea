package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	App         AppConfig
	Providers   ProvidersConfig
	Device      DeviceConfig
	Preferences PreferencesConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds dashboard behaviour configuration
type AppConfig struct {
	Name              string // overrides the localized app name when set
	Language          string // empty means detect from LANG
	FallbackLatitude  float64
	FallbackLongitude float64
	NotificationTTL   time.Duration
}

// ProvidersConfig holds upstream API configuration
type ProvidersConfig struct {
	ForecastURL     string
	GeocodingURL    string
	ReverseGeocoder string // openmeteo, nominatim
	NominatimURL    string
	UserAgent       string
	Timeout         time.Duration
}

// DeviceConfig selects how the device position is obtained
type DeviceConfig struct {
	Mode        string // ip, static, none
	Latitude    float64
	Longitude   float64
	IPLookupURL string
}

// PreferencesConfig holds the preference store location
type PreferencesConfig struct {
	Path string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.clima")

	SetDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("CLIMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults registers every default on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("app.name", "")
	v.SetDefault("app.language", "")
	// São Paulo
	v.SetDefault("app.fallbackLatitude", -23.5505)
	v.SetDefault("app.fallbackLongitude", -46.6333)
	v.SetDefault("app.notificationTTL", 3*time.Second)

	v.SetDefault("providers.forecastURL", "https://api.open-meteo.com/v1")
	v.SetDefault("providers.geocodingURL", "https://geocoding-api.open-meteo.com/v1")
	v.SetDefault("providers.reverseGeocoder", "openmeteo")
	v.SetDefault("providers.nominatimURL", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("providers.userAgent", "clima/1.0")
	v.SetDefault("providers.timeout", 10*time.Second)

	v.SetDefault("device.mode", "ip")
	v.SetDefault("device.latitude", 0.0)
	v.SetDefault("device.longitude", 0.0)
	v.SetDefault("device.ipLookupURL", "https://ipapi.co/json/")

	v.SetDefault("preferences.path", "clima.db")
}

// Default returns a configuration populated only from defaults
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	// defaults alone always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

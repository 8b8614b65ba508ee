package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/davetran/wayfare/internal/pkg/models"
	"github.com/joho/godotenv"
)

// ErrMissingMapsAPIKey is returned when the required mapping provider
// key is absent. The service fails fast at startup in that case.
var ErrMissingMapsAPIKey = errors.New("MAPS_API_KEY is required")

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

// Validate checks invariants the service cannot run without. Provider
// credentials are deliberately not checked: their absence degrades to
// synthetic pricing, never an error.
func Validate(cfg *models.Config) error {
	if cfg.Maps.APIKey == "" {
		return ErrMissingMapsAPIKey
	}
	return nil
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "wayfare")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Mapping provider config
	configs.Maps.APIKey = GetEnv("MAPS_API_KEY", "")
	configs.Maps.BaseURL = GetEnv("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api")
	configs.Maps.TimeoutSeconds = GetEnvAsInt("MAPS_TIMEOUT", 10)
	configs.Maps.MaxTransitRoutes = GetEnvAsInt("MAPS_MAX_TRANSIT_ROUTES", 3)

	// Rideshare provider configs
	configs.Uber.ClientID = GetEnv("UBER_CLIENT_ID", "")
	configs.Uber.ClientSecret = GetEnv("UBER_CLIENT_SECRET", "")
	configs.Uber.BaseURL = GetEnv("UBER_BASE_URL", "https://api.uber.com/v1.2")
	configs.Uber.AuthURL = GetEnv("UBER_AUTH_URL", "https://login.uber.com/oauth/v2/token")
	configs.Uber.Scope = GetEnv("UBER_SCOPE", "request")
	configs.Uber.TimeoutSeconds = GetEnvAsInt("UBER_TIMEOUT", 30)

	configs.Lyft.ClientID = GetEnv("LYFT_CLIENT_ID", "")
	configs.Lyft.ClientSecret = GetEnv("LYFT_CLIENT_SECRET", "")
	configs.Lyft.BaseURL = GetEnv("LYFT_BASE_URL", "https://api.lyft.com/v1")
	configs.Lyft.AuthURL = GetEnv("LYFT_AUTH_URL", "https://api.lyft.com/oauth/token")
	configs.Lyft.Scope = GetEnv("LYFT_SCOPE", "public")
	configs.Lyft.TimeoutSeconds = GetEnvAsInt("LYFT_TIMEOUT", 30)

	// Flat fares, in cents
	configs.Fares.StandardFareCents = GetEnvAsInt("FARE_STANDARD_CENTS", 290)
	configs.Fares.ExpressBusFareCents = GetEnvAsInt("FARE_EXPRESS_BUS_CENTS", 700)
	configs.Fares.BikeShareFareCents = GetEnvAsInt("FARE_BIKE_SHARE_CENTS", 395)
	configs.Fares.Currency = GetEnv("FARE_CURRENCY", "USD")

	// Response cache config
	configs.Cache.TTLSeconds = GetEnvAsInt("CACHE_TTL", 300)
	configs.Cache.MaxEntries = GetEnvAsInt("CACHE_MAX_ENTRIES", 1000)
	configs.Cache.RedisHost = GetEnv("REDIS_HOST", "")
	configs.Cache.RedisPort = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Cache.RedisPassword = GetEnv("REDIS_PASSWORD", "")
	configs.Cache.RedisDB = GetEnvAsInt("REDIS_DB", 0)
	configs.Cache.RedisPoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

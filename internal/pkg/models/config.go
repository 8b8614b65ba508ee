package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Maps   MapsConfig
	Uber   ProviderConfig
	Lyft   ProviderConfig
	Fares  FareConfig
	Cache  CacheConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MapsConfig contains mapping provider configuration.
// APIKey is required; the service refuses to start without it.
type MapsConfig struct {
	APIKey           string
	BaseURL          string
	TimeoutSeconds   int
	MaxTransitRoutes int // alternatives processed per transit request
}

// ProviderConfig contains one rideshare provider's API configuration.
// Credentials are optional; without them pricing degrades to the
// synthetic estimator.
type ProviderConfig struct {
	ClientID       string
	ClientSecret   string
	BaseURL        string
	AuthURL        string
	Scope          string
	TimeoutSeconds int
}

// FareConfig contains flat-fare transit and bike-share pricing in cents
type FareConfig struct {
	StandardFareCents   int
	ExpressBusFareCents int
	BikeShareFareCents  int
	Currency            string
}

// CacheConfig contains response cache configuration. When RedisHost is
// empty the in-memory cache is used instead.
type CacheConfig struct {
	TTLSeconds    int
	MaxEntries    int
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int
	RedisPoolSize int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

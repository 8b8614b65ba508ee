package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetran/wayfare/internal/pkg/models"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "https://maps.googleapis.com/maps/api", cfg.Maps.BaseURL)
	assert.Equal(t, 3, cfg.Maps.MaxTransitRoutes)
	assert.Equal(t, 290, cfg.Fares.StandardFareCents)
	assert.Equal(t, 700, cfg.Fares.ExpressBusFareCents)
	assert.Equal(t, 395, cfg.Fares.BikeShareFareCents)
	assert.Equal(t, "USD", cfg.Fares.Currency)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("MAPS_API_KEY", "env-key")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("FARE_STANDARD_CENTS", "275")
	t.Setenv("UBER_CLIENT_ID", "uber-client")

	cfg := loadConfigFromEnv()

	assert.Equal(t, "env-key", cfg.Maps.APIKey)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 275, cfg.Fares.StandardFareCents)
	assert.Equal(t, "uber-client", cfg.Uber.ClientID)
}

func TestValidate_RequiresMapsAPIKey(t *testing.T) {
	err := Validate(&models.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingMapsAPIKey)

	cfg := &models.Config{}
	cfg.Maps.APIKey = "some-key"
	assert.NoError(t, Validate(cfg))
}

func TestValidate_ProviderCredentialsOptional(t *testing.T) {
	// Absent rideshare credentials degrade to synthetic pricing, so
	// validation must not reject them
	cfg := &models.Config{}
	cfg.Maps.APIKey = "some-key"
	cfg.Uber.ClientID = ""
	cfg.Lyft.ClientSecret = ""

	assert.NoError(t, Validate(cfg))
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "hello")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "not-a-number")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_FLOAT", "2.55")

	assert.Equal(t, "hello", GetEnv("TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_UNSET", "fallback"))

	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 0))
	assert.Equal(t, 7, GetEnvAsInt("TEST_BAD_INT", 7))

	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.Equal(t, 2.55, GetEnvAsFloat("TEST_FLOAT", 0))
}

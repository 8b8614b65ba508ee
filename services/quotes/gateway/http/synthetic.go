package http

import (
	"math"

	"github.com/davetran/wayfare/internal/pkg/logger"
	"github.com/davetran/wayfare/internal/pkg/models"
)

// syntheticRates holds one provider's deterministic estimator
// constants. They mirror the provider's published NYC base rates and
// are intentionally not runtime-tunable.
type syntheticRates struct {
	service          string
	baseRate         float64 // USD
	perMileRate      float64 // USD
	perMinuteRate    float64 // USD
	rangeMultiplier  float64 // high estimate = low estimate * multiplier
	bikeLowCents     int
	bikeHighCents    int
	scooterLowCents  int
	scooterHighCents int
}

var (
	uberSyntheticRates = syntheticRates{
		service:          "uber",
		baseRate:         2.55,
		perMileRate:      1.75,
		perMinuteRate:    0.35,
		rangeMultiplier:  1.30,
		bikeLowCents:     300,
		bikeHighCents:    600,
		scooterLowCents:  400,
		scooterHighCents: 800,
	}

	lyftSyntheticRates = syntheticRates{
		service:          "lyft",
		baseRate:         2.65,
		perMileRate:      1.85,
		perMinuteRate:    0.38,
		rangeMultiplier:  1.35,
		bikeLowCents:     350,
		bikeHighCents:    650,
		scooterLowCents:  450,
		scooterHighCents: 850,
	}
)

// Micromobility products are only offered for short trips
const (
	syntheticBikeMaxMiles    = 3.0
	syntheticScooterMaxMiles = 2.5
)

// approxMiles converts a coordinate pair to an approximate trip
// distance: Euclidean distance in degrees times 69 miles per degree.
// Rough, but monotone in coordinate distance, which is all the
// estimator needs.
func approxMiles(startLat, startLng, endLat, endLng float64) float64 {
	latDiff := math.Abs(endLat - startLat)
	lngDiff := math.Abs(endLng - startLng)
	return math.Sqrt(latDiff*latDiff+lngDiff*lngDiff) * 69
}

// syntheticDurationMinutes estimates trip time from distance with an
// 8 minute floor
func syntheticDurationMinutes(miles float64) float64 {
	return math.Max(8, miles*3)
}

// syntheticEstimates produces deterministic quotes when live pricing is
// unreachable or unauthenticated
func syntheticEstimates(rates syntheticRates, startLat, startLng, endLat, endLng float64) map[string]models.ProviderQuote {
	miles := approxMiles(startLat, startLng, endLat, endLng)
	minutes := syntheticDurationMinutes(miles)

	baseFare := rates.baseRate + miles*rates.perMileRate + minutes*rates.perMinuteRate
	lowCents := int(baseFare * 100)
	highCents := int(baseFare * rates.rangeMultiplier * 100)

	logger.Info("using synthetic pricing",
		logger.String("service", rates.service),
		logger.Float64("distance_miles", miles),
		logger.Int("low_cents", lowCents))

	quotes := map[string]models.ProviderQuote{
		ProductStandard: {
			PriceCentsLow:   &lowCents,
			PriceCentsHigh:  &highCents,
			DurationMinutes: int(minutes),
			Status:          models.QuoteStatusAvailable,
			ServiceName:     rates.service,
			ProductKey:      ProductStandard,
		},
	}

	bike := models.ProviderQuote{
		DurationMinutes: int(miles * 4),
		Status:          models.QuoteStatusUnavailable,
		ServiceName:     rates.service,
		ProductKey:      ProductBike,
	}
	if miles < syntheticBikeMaxMiles {
		bikeLow, bikeHigh := rates.bikeLowCents, rates.bikeHighCents
		bike.PriceCentsLow = &bikeLow
		bike.PriceCentsHigh = &bikeHigh
		bike.Status = models.QuoteStatusAvailable
	}
	quotes[ProductBike] = bike

	scooter := models.ProviderQuote{
		DurationMinutes: int(miles * 3),
		Status:          models.QuoteStatusUnavailable,
		ServiceName:     rates.service,
		ProductKey:      ProductScooter,
	}
	if miles < syntheticScooterMaxMiles {
		scooterLow, scooterHigh := rates.scooterLowCents, rates.scooterHighCents
		scooter.PriceCentsLow = &scooterLow
		scooter.PriceCentsHigh = &scooterHigh
		scooter.Status = models.QuoteStatusAvailable
	}
	quotes[ProductScooter] = scooter

	return quotes
}

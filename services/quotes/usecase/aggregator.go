package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/davetran/wayfare/internal/pkg/logger"
	"github.com/davetran/wayfare/internal/pkg/models"
	"github.com/davetran/wayfare/services/quotes"
)

// Well-known provider keys in the pricing map
const (
	providerTransit   = "mta"
	providerBikeShare = "citibike"
)

// quoteUC implements the quotes.QuoteUC interface
type quoteUC struct {
	cfg       *models.Config
	mapsGW    quotes.MapsGW
	providers []quotes.RideshareGW
}

// NewQuoteUC creates the aggregation use case
func NewQuoteUC(cfg *models.Config, mapsGW quotes.MapsGW, providers ...quotes.RideshareGW) quotes.QuoteUC {
	return &quoteUC{
		cfg:       cfg,
		mapsGW:    mapsGW,
		providers: providers,
	}
}

// branchResult is one concurrent branch's slot: a value or the reason
// it degraded, never both
type branchResult[T any] struct {
	value T
	err   error
}

// Aggregate builds the full comparison response. It never fails for
// provider-side reasons: every degraded branch shrinks to an absent
// route or an unavailable/error quote. Only invalid input is an error.
func (uc *quoteUC) Aggregate(ctx context.Context, origin, destination string) (*models.AggregatedQuote, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}

	// Directions for every mode and both geocodes are independent;
	// fan out and settle all of them before touching pricing.
	routeSlots := make([]branchResult[*models.ModeRoute], len(models.DirectionModes))
	var originSlot, destSlot branchResult[*models.GeoPoint]

	var wg sync.WaitGroup
	for i, mode := range models.DirectionModes {
		wg.Add(1)
		go func(i int, mode string) {
			defer wg.Done()
			route, err := uc.mapsGW.FetchRoute(ctx, origin, destination, mode)
			routeSlots[i] = branchResult[*models.ModeRoute]{value: route, err: err}
		}(i, mode)
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		point, err := uc.mapsGW.Geocode(ctx, origin)
		originSlot = branchResult[*models.GeoPoint]{value: point, err: err}
	}()
	go func() {
		defer wg.Done()
		point, err := uc.mapsGW.Geocode(ctx, destination)
		destSlot = branchResult[*models.GeoPoint]{value: point, err: err}
	}()
	wg.Wait()

	routes := make(map[string]models.ModeRoute)
	for i, mode := range models.DirectionModes {
		slot := routeSlots[i]
		if slot.err != nil || slot.value == nil {
			logger.Warn("direction mode unavailable",
				logger.String("mode", mode),
				logger.Err(slot.err))
			continue
		}
		routes[mode] = *slot.value
	}

	for _, slot := range []struct {
		label  string
		result branchResult[*models.GeoPoint]
	}{{"origin", originSlot}, {"destination", destSlot}} {
		if slot.result.err != nil {
			logger.Warn("geocoding failed",
				logger.String("endpoint", slot.label),
				logger.Err(slot.result.err))
		}
	}

	pricing := map[string]map[string]models.ProviderQuote{
		models.CategoryRideshare:     uc.ridesharePricing(ctx, originSlot.value, destSlot.value, routes),
		models.CategoryTransit:       uc.transitPricing(routes),
		models.CategoryMicromobility: uc.micromobilityPricing(routes),
	}

	return &models.AggregatedQuote{
		Origin:      origin,
		Destination: destination,
		Routes:      routes,
		Pricing:     pricing,
		Timestamp:   time.Now().UTC(),
	}, nil
}

// ridesharePricing queries both providers concurrently once coordinates
// are available. Missing coordinates short-circuit to unavailable; one
// provider's failure never touches the other (all-settled join).
func (uc *quoteUC) ridesharePricing(ctx context.Context, origin, destination *models.GeoPoint, routes map[string]models.ModeRoute) map[string]models.ProviderQuote {
	category := make(map[string]models.ProviderQuote, len(uc.providers))

	if origin == nil || destination == nil {
		for _, provider := range uc.providers {
			category[provider.Name()] = models.ProviderQuote{
				Status:      models.QuoteStatusUnavailable,
				ServiceName: provider.Name(),
				ProductKey:  "standard",
			}
		}
		return category
	}

	results := make([]branchResult[map[string]models.ProviderQuote], len(uc.providers))
	var wg sync.WaitGroup
	for i, provider := range uc.providers {
		wg.Add(1)
		go func(i int, provider quotes.RideshareGW) {
			defer wg.Done()
			estimates, err := provider.GetCostEstimates(ctx,
				origin.Latitude, origin.Longitude,
				destination.Latitude, destination.Longitude)
			results[i] = branchResult[map[string]models.ProviderQuote]{value: estimates, err: err}
		}(i, provider)
	}
	wg.Wait()

	driving, hasDriving := routes[models.ModeDriving]
	for i, provider := range uc.providers {
		result := results[i]
		if result.err != nil || len(result.value) == 0 {
			logger.Warn("provider pricing degraded",
				logger.String("provider", provider.Name()),
				logger.Err(result.err))
			category[provider.Name()] = models.ProviderQuote{
				Status:      models.QuoteStatusError,
				ServiceName: provider.Name(),
				ProductKey:  "standard",
			}
			continue
		}

		quote := representativeQuote(result.value)
		if hasDriving {
			// One shared trip-duration estimate for all pricing,
			// sourced from the driving directions, overrides the
			// provider's own duration
			quote.DurationMinutes = driving.DurationMinutes
		}
		category[provider.Name()] = quote
	}

	return category
}

// transitPricing derives the flat-fare transit quote from the transit
// ModeRoute
func (uc *quoteUC) transitPricing(routes map[string]models.ModeRoute) map[string]models.ProviderQuote {
	quote := models.ProviderQuote{
		Status:      models.QuoteStatusUnavailable,
		ServiceName: providerTransit,
		ProductKey:  "single_ride",
	}

	if transit, ok := routes[models.ModeTransit]; ok {
		fare := uc.cfg.Fares.StandardFareCents
		quote.PriceCentsLow = &fare
		high := fare
		quote.PriceCentsHigh = &high
		quote.DurationMinutes = transit.DurationMinutes
		quote.Status = models.QuoteStatusAvailable
	}

	return map[string]models.ProviderQuote{providerTransit: quote}
}

// micromobilityPricing derives the bike-share quote from the bicycling
// ModeRoute
func (uc *quoteUC) micromobilityPricing(routes map[string]models.ModeRoute) map[string]models.ProviderQuote {
	quote := models.ProviderQuote{
		Status:      models.QuoteStatusUnavailable,
		ServiceName: providerBikeShare,
		ProductKey:  "bike",
	}

	if bicycling, ok := routes[models.ModeBicycling]; ok {
		fare := uc.cfg.Fares.BikeShareFareCents
		quote.PriceCentsLow = &fare
		high := fare
		quote.PriceCentsHigh = &high
		quote.DurationMinutes = bicycling.DurationMinutes
		quote.Status = models.QuoteStatusAvailable
	}

	return map[string]models.ProviderQuote{providerBikeShare: quote}
}

// representativeQuote picks the single quote shown for a provider in
// the aggregated response: the standard product when present, otherwise
// the cheapest available product, otherwise the first product in key
// order so repeated calls stay deterministic.
func representativeQuote(estimates map[string]models.ProviderQuote) models.ProviderQuote {
	if quote, ok := estimates["standard"]; ok {
		return quote
	}

	keys := make([]string, 0, len(estimates))
	for key := range estimates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var cheapest *models.ProviderQuote
	for _, key := range keys {
		quote := estimates[key]
		if !quote.Available() {
			continue
		}
		if cheapest == nil || *quote.PriceCentsLow < *cheapest.PriceCentsLow {
			q := quote
			cheapest = &q
		}
	}
	if cheapest != nil {
		return *cheapest
	}

	return estimates[keys[0]]
}

// GeocodeAddress resolves a free-text address. A nil result with nil
// error means the address did not resolve.
func (uc *quoteUC) GeocodeAddress(ctx context.Context, address string) (*models.GeoPoint, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("address is required")
	}

	point, err := uc.mapsGW.Geocode(ctx, address)
	if err != nil {
		logger.Warn("geocoding failed", logger.String("address", address), logger.Err(err))
		return nil, nil
	}
	return point, nil
}

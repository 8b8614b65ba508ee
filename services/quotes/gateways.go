package quotes

import (
	"context"

	"github.com/davetran/wayfare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/davetran/wayfare/services/quotes MapsGW,RideshareGW

// MapsGW is the gateway to the mapping provider. Errors from FetchRoute
// and Geocode mean "absent": callers degrade the branch instead of
// failing the request.
type MapsGW interface {
	// FetchRoute returns the first route's first leg for one mode
	FetchRoute(ctx context.Context, origin, destination, mode string) (*models.ModeRoute, error)

	// FetchTransitRoutes returns raw transit route alternatives
	FetchTransitRoutes(ctx context.Context, origin, destination, departureTime string) ([]models.DirectionsRoute, error)

	// Geocode resolves a free-text address to coordinates
	Geocode(ctx context.Context, address string) (*models.GeoPoint, error)
}

// RideshareGW is one rideshare provider's pricing client. GetCostEstimates
// never fails for provider-side reasons: on missing credentials, auth
// failure, or upstream errors it falls back to the synthetic estimator.
// A returned error indicates a malformed response that left no usable
// quotes at all.
type RideshareGW interface {
	// Name identifies the provider in the aggregated response
	Name() string

	// GetCostEstimates returns quotes keyed by canonical product key
	GetCostEstimates(ctx context.Context, startLat, startLng, endLat, endLng float64) (map[string]models.ProviderQuote, error)
}

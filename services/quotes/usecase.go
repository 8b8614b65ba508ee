package quotes

import (
	"context"

	"github.com/davetran/wayfare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/davetran/wayfare/services/quotes QuoteUC

// QuoteUC is the quote aggregation use case exposed to the HTTP layer.
// Aggregate and the transit operations degrade failed branches inside
// the response; they return an error only for invalid input.
type QuoteUC interface {
	// Aggregate builds the multi-modal route and pricing comparison
	Aggregate(ctx context.Context, origin, destination string) (*models.AggregatedQuote, error)

	// TransitDirections returns processed transit route alternatives
	TransitDirections(ctx context.Context, origin, destination, departureTime string) (*models.TransitDirections, error)

	// TransitSummary digests the best transit route for quick comparison
	TransitSummary(ctx context.Context, origin, destination string) (*models.TransitSummary, error)

	// GeocodeAddress resolves a free-text address; nil result means not found
	GeocodeAddress(ctx context.Context, address string) (*models.GeoPoint, error)
}

package models

import "time"

// QuoteStatus represents the availability of a single provider quote
type QuoteStatus string

const (
	QuoteStatusAvailable   QuoteStatus = "available"
	QuoteStatusUnavailable QuoteStatus = "unavailable"
	QuoteStatusPending     QuoteStatus = "pending"
	QuoteStatusError       QuoteStatus = "error"
)

// ProviderQuote is the canonical price record every provider response is
// normalized into. PriceCentsLow/High are set iff Status is available.
type ProviderQuote struct {
	PriceCentsLow   *int        `json:"price_cents_low,omitempty"`
	PriceCentsHigh  *int        `json:"price_cents_high,omitempty"`
	DurationMinutes int         `json:"duration_minutes,omitempty"`
	Status          QuoteStatus `json:"status"`
	ServiceName     string      `json:"service_name"`
	ProductKey      string      `json:"product_key"`
	DisplayName     string      `json:"display_name,omitempty"`
}

// Available reports whether the quote carries a usable price range
func (q ProviderQuote) Available() bool {
	return q.Status == QuoteStatusAvailable && q.PriceCentsLow != nil
}

// AggregatedQuote is the top-level comparison response built once per
// request and immutable after construction. Routes is keyed by mode;
// Pricing by category then provider.
type AggregatedQuote struct {
	Origin      string                              `json:"origin"`
	Destination string                              `json:"destination"`
	Routes      map[string]ModeRoute                `json:"routes"`
	Pricing     map[string]map[string]ProviderQuote `json:"pricing"`
	Timestamp   time.Time                           `json:"timestamp"`
}

// Pricing categories in the aggregated response
const (
	CategoryRideshare     = "rideshare"
	CategoryTransit       = "transit"
	CategoryMicromobility = "micromobility"
)

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/davetran/wayfare/internal/pkg/logger"
	"github.com/davetran/wayfare/internal/pkg/models"
)

// lyftCostEstimate is one line item of the provider's cost response.
// Unlike the Uber shape, estimates arrive directly in cents and carry a
// validity flag instead of omitting the fields.
type lyftCostEstimate struct {
	RideType                 string `json:"ride_type"`
	DisplayName              string `json:"display_name"`
	EstimatedCostCentsMin    int    `json:"estimated_cost_cents_min"`
	EstimatedCostCentsMax    int    `json:"estimated_cost_cents_max"`
	EstimatedDurationSeconds int    `json:"estimated_duration_seconds"`
	IsValidEstimate          *bool  `json:"is_valid_estimate"`
	PrimetimePercentage      string `json:"primetime_percentage"`
	Currency                 string `json:"currency"`
}

type lyftCostResponse struct {
	CostEstimates []lyftCostEstimate `json:"cost_estimates"`
}

// LyftClient prices trips against the Lyft-shaped provider. Same
// contract as UberClient: never fails for provider-side reasons.
type LyftClient struct {
	cfg        models.ProviderConfig
	httpClient *http.Client
	token      *tokenCell
}

// NewLyftClient creates a new Lyft pricing client
func NewLyftClient(cfg models.ProviderConfig) *LyftClient {
	httpClient := newProviderHTTPClient(cfg.TimeoutSeconds)

	client := &LyftClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
	client.token = newTokenCell(func(ctx context.Context) (string, error) {
		return clientCredentialsAuth(ctx, httpClient, cfg.AuthURL, cfg.ClientID, cfg.ClientSecret, cfg.Scope)
	})

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		logger.Warn("lyft credentials not configured - pricing degrades to synthetic estimates")
	}

	return client
}

// Name identifies the provider in the aggregated response
func (l *LyftClient) Name() string { return "lyft" }

// GetCostEstimates returns quotes keyed by canonical product key
func (l *LyftClient) GetCostEstimates(ctx context.Context, startLat, startLng, endLat, endLng float64) (map[string]models.ProviderQuote, error) {
	if l.cfg.ClientID == "" || l.cfg.ClientSecret == "" {
		return syntheticEstimates(lyftSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	token, err := l.token.Token(ctx)
	if err != nil {
		logger.Warn("lyft authentication failed, using synthetic pricing", logger.Err(err))
		return syntheticEstimates(lyftSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	status, body, err := l.fetchCosts(ctx, token, startLat, startLng, endLat, endLng)
	if err == nil && status == http.StatusUnauthorized {
		// Cached token went stale: invalidate, re-authenticate, retry once
		l.token.Invalidate()
		if token, err = l.token.Token(ctx); err == nil {
			status, body, err = l.fetchCosts(ctx, token, startLat, startLng, endLat, endLng)
		}
	}
	if err != nil {
		logger.Warn("lyft cost request failed, using synthetic pricing", logger.Err(err))
		return syntheticEstimates(lyftSyntheticRates, startLat, startLng, endLat, endLng), nil
	}
	if status != http.StatusOK {
		logger.Warn("lyft cost endpoint returned non-success status",
			logger.Int("status", status),
			logger.String("body", string(body)))
		return syntheticEstimates(lyftSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	var data lyftCostResponse
	if err := json.Unmarshal(body, &data); err != nil {
		logger.Warn("failed to parse lyft cost response, using synthetic pricing", logger.Err(err))
		return syntheticEstimates(lyftSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	quotes := make(map[string]models.ProviderQuote, len(data.CostEstimates))
	for _, estimate := range data.CostEstimates {
		if estimate.RideType == "" && estimate.DisplayName == "" {
			// Malformed line item: skip it, keep the rest
			continue
		}

		name := estimate.DisplayName
		if name == "" {
			name = estimate.RideType
		}

		quote := models.ProviderQuote{
			DurationMinutes: roundSecondsToMinutes(estimate.EstimatedDurationSeconds),
			Status:          models.QuoteStatusUnavailable,
			ServiceName:     l.Name(),
			ProductKey:      NormalizeProductName(name),
			DisplayName:     name,
		}

		// A missing validity flag counts as valid, matching the
		// provider's documented default
		if estimate.IsValidEstimate == nil || *estimate.IsValidEstimate {
			low := estimate.EstimatedCostCentsMin
			high := estimate.EstimatedCostCentsMax
			quote.PriceCentsLow = &low
			quote.PriceCentsHigh = &high
			quote.Status = models.QuoteStatusAvailable
		}

		quotes[quote.ProductKey] = quote
	}

	if len(quotes) == 0 {
		logger.Warn("lyft cost response carried no usable products, using synthetic pricing")
		return syntheticEstimates(lyftSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	return quotes, nil
}

func (l *LyftClient) fetchCosts(ctx context.Context, token string, startLat, startLng, endLat, endLng float64) (int, []byte, error) {
	params := url.Values{}
	params.Set("start_lat", fmt.Sprintf("%f", startLat))
	params.Set("start_lng", fmt.Sprintf("%f", startLng))
	params.Set("end_lat", fmt.Sprintf("%f", endLat))
	params.Set("end_lng", fmt.Sprintf("%f", endLng))

	endpoint := l.cfg.BaseURL + "/cost?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create cost request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("cost request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read cost response: %w", err)
	}

	return resp.StatusCode, body, nil
}

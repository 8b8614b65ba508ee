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

// uberPriceEstimate is one line item of the provider's price response.
// Low/high estimates arrive as whole dollars and may be absent (metered
// products).
type uberPriceEstimate struct {
	ProductID       string  `json:"product_id"`
	DisplayName     string  `json:"display_name"`
	Estimate        string  `json:"estimate"`
	LowEstimate     *int    `json:"low_estimate"`
	HighEstimate    *int    `json:"high_estimate"`
	CurrencyCode    string  `json:"currency_code"`
	DurationSeconds int     `json:"duration"`
	DistanceMiles   float64 `json:"distance"`
	SurgeMultiplier float64 `json:"surge_multiplier"`
}

type uberPriceResponse struct {
	Prices []uberPriceEstimate `json:"prices"`
}

// UberClient prices trips against the Uber-shaped provider. Live
// pricing requires OAuth credentials; without them, or on any upstream
// failure, the client degrades to the synthetic estimator.
type UberClient struct {
	cfg        models.ProviderConfig
	httpClient *http.Client
	token      *tokenCell
}

// NewUberClient creates a new Uber pricing client
func NewUberClient(cfg models.ProviderConfig) *UberClient {
	httpClient := newProviderHTTPClient(cfg.TimeoutSeconds)

	client := &UberClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
	client.token = newTokenCell(func(ctx context.Context) (string, error) {
		return clientCredentialsAuth(ctx, httpClient, cfg.AuthURL, cfg.ClientID, cfg.ClientSecret, cfg.Scope)
	})

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		logger.Warn("uber credentials not configured - pricing degrades to synthetic estimates")
	}

	return client
}

// Name identifies the provider in the aggregated response
func (u *UberClient) Name() string { return "uber" }

// GetCostEstimates returns quotes keyed by canonical product key. It
// never fails for provider-side reasons.
func (u *UberClient) GetCostEstimates(ctx context.Context, startLat, startLng, endLat, endLng float64) (map[string]models.ProviderQuote, error) {
	if u.cfg.ClientID == "" || u.cfg.ClientSecret == "" {
		return syntheticEstimates(uberSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	token, err := u.token.Token(ctx)
	if err != nil {
		logger.Warn("uber authentication failed, using synthetic pricing", logger.Err(err))
		return syntheticEstimates(uberSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	status, body, err := u.fetchPrices(ctx, token, startLat, startLng, endLat, endLng)
	if err == nil && status == http.StatusUnauthorized {
		// Cached token went stale: invalidate, re-authenticate, retry once
		u.token.Invalidate()
		if token, err = u.token.Token(ctx); err == nil {
			status, body, err = u.fetchPrices(ctx, token, startLat, startLng, endLat, endLng)
		}
	}
	if err != nil {
		logger.Warn("uber price request failed, using synthetic pricing", logger.Err(err))
		return syntheticEstimates(uberSyntheticRates, startLat, startLng, endLat, endLng), nil
	}
	if status != http.StatusOK {
		logger.Warn("uber price endpoint returned non-success status",
			logger.Int("status", status),
			logger.String("body", string(body)))
		return syntheticEstimates(uberSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	var data uberPriceResponse
	if err := json.Unmarshal(body, &data); err != nil {
		logger.Warn("failed to parse uber price response, using synthetic pricing", logger.Err(err))
		return syntheticEstimates(uberSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	quotes := make(map[string]models.ProviderQuote, len(data.Prices))
	for _, price := range data.Prices {
		if price.DisplayName == "" && price.ProductID == "" {
			// Malformed line item: skip it, keep the rest
			continue
		}

		quote := models.ProviderQuote{
			DurationMinutes: roundSecondsToMinutes(price.DurationSeconds),
			Status:          models.QuoteStatusUnavailable,
			ServiceName:     u.Name(),
			ProductKey:      NormalizeProductName(price.DisplayName),
			DisplayName:     price.DisplayName,
		}

		if price.LowEstimate != nil && price.HighEstimate != nil {
			low := *price.LowEstimate * 100
			high := *price.HighEstimate * 100
			quote.PriceCentsLow = &low
			quote.PriceCentsHigh = &high
			quote.Status = models.QuoteStatusAvailable
		}

		quotes[quote.ProductKey] = quote
	}

	if len(quotes) == 0 {
		logger.Warn("uber price response carried no usable products, using synthetic pricing")
		return syntheticEstimates(uberSyntheticRates, startLat, startLng, endLat, endLng), nil
	}

	return quotes, nil
}

func (u *UberClient) fetchPrices(ctx context.Context, token string, startLat, startLng, endLat, endLng float64) (int, []byte, error) {
	params := url.Values{}
	params.Set("start_latitude", fmt.Sprintf("%f", startLat))
	params.Set("start_longitude", fmt.Sprintf("%f", startLng))
	params.Set("end_latitude", fmt.Sprintf("%f", endLat))
	params.Set("end_longitude", fmt.Sprintf("%f", endLng))

	endpoint := u.cfg.BaseURL + "/estimates/price?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create price request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", "en_US")
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("price request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read price response: %w", err)
	}

	return resp.StatusCode, body, nil
}

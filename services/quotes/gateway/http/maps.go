package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	httpclient "github.com/davetran/wayfare/internal/pkg/http"
	"github.com/davetran/wayfare/internal/pkg/logger"
	"github.com/davetran/wayfare/internal/pkg/models"
)

// ErrUpstreamStatus indicates the upstream answered but reported a
// non-success status. Callers treat this the same as a transport
// failure: the branch becomes absent.
var ErrUpstreamStatus = errors.New("upstream returned non-success status")

// MapsClient talks to the mapping provider's directions and geocoding
// APIs
type MapsClient struct {
	cfg    models.MapsConfig
	client *httpclient.Client
}

// NewMapsClient creates a new mapping provider client
func NewMapsClient(cfg models.MapsConfig) *MapsClient {
	return &MapsClient{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
	}
}

// FetchRoute queries directions for one mode, requesting alternatives,
// and selects the first returned route's first leg. First-result
// selection is a deliberate simplification: no route ranking happens
// here.
func (m *MapsClient) FetchRoute(ctx context.Context, origin, destination, mode string) (*models.ModeRoute, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", mode)
	params.Set("alternatives", "true")
	params.Set("key", m.cfg.APIKey)

	data, err := m.getDirections(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(data.Routes) == 0 || len(data.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("directions for mode %s: %w: empty route set", mode, ErrUpstreamStatus)
	}

	leg := data.Routes[0].Legs[0]
	return &models.ModeRoute{
		Mode:            mode,
		DistanceText:    leg.Distance.Text,
		DistanceMeters:  leg.Distance.Value,
		DurationText:    leg.Duration.Text,
		DurationMinutes: roundSecondsToMinutes(leg.Duration.Value),
		StartAddress:    leg.StartAddress,
		EndAddress:      leg.EndAddress,
		StepCount:       len(leg.Steps),
	}, nil
}

// FetchTransitRoutes returns every raw transit alternative the provider
// offers; the caller applies the route cap
func (m *MapsClient) FetchTransitRoutes(ctx context.Context, origin, destination, departureTime string) ([]models.DirectionsRoute, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", models.ModeTransit)
	params.Set("alternatives", "true")
	params.Set("transit_mode", "subway|bus|rail")
	params.Set("key", m.cfg.APIKey)

	if departureTime == "" {
		departureTime = "now"
	}
	params.Set("departure_time", departureTime)

	data, err := m.getDirections(ctx, params)
	if err != nil {
		return nil, err
	}

	return data.Routes, nil
}

// Geocode resolves an address, taking the first result only. No retry:
// absence on any failure.
func (m *MapsClient) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", m.cfg.APIKey)

	status, body, err := m.client.Get(ctx, "/geocode/json", params)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("geocode: %w: HTTP %d", ErrUpstreamStatus, status)
	}

	var data models.GeocodeResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse geocode response: %w", err)
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		return nil, fmt.Errorf("geocode: %w: %s", ErrUpstreamStatus, data.Status)
	}

	result := data.Results[0]
	return &models.GeoPoint{
		Latitude:         result.Geometry.Location.Lat,
		Longitude:        result.Geometry.Location.Lng,
		FormattedAddress: result.FormattedAddress,
		PlaceID:          result.PlaceID,
	}, nil
}

func (m *MapsClient) getDirections(ctx context.Context, params url.Values) (*models.DirectionsResponse, error) {
	status, body, err := m.client.Get(ctx, "/directions/json", params)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("directions: %w: HTTP %d", ErrUpstreamStatus, status)
	}

	var data models.DirectionsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse directions response: %w", err)
	}

	if data.Status != "OK" {
		logger.Warn("directions returned non-OK status",
			logger.String("status", data.Status),
			logger.String("error_message", data.ErrorMessage))
		return nil, fmt.Errorf("directions: %w: %s", ErrUpstreamStatus, data.Status)
	}

	return &data, nil
}

func roundSecondsToMinutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}

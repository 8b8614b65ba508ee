package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/davetran/wayfare/internal/pkg/logger"
	"github.com/davetran/wayfare/internal/pkg/models"
)

// Fare type labels in the transit response
const (
	fareTypeExpress  = "Express Bus"
	fareTypeStandard = "Standard Fare"
	fareTypeFree     = "Free (Walking Only)"
)

// TransitDirections fetches transit alternatives and derives fares,
// transfers and walking distance for each. Upstream failure degrades
// the envelope status instead of surfacing an error.
func (uc *quoteUC) TransitDirections(ctx context.Context, origin, destination, departureTime string) (*models.TransitDirections, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}

	envelope := &models.TransitDirections{
		Origin:      origin,
		Destination: destination,
		Routes:      []models.TransitRoute{},
		Timestamp:   time.Now().UTC(),
	}

	rawRoutes, err := uc.mapsGW.FetchTransitRoutes(ctx, origin, destination, departureTime)
	if err != nil {
		logger.Warn("transit directions unavailable",
			logger.String("origin", origin),
			logger.String("destination", destination),
			logger.Err(err))
		envelope.Status = models.TransitStatusError
		envelope.Message = "transit directions are temporarily unavailable"
		return envelope, nil
	}
	if len(rawRoutes) == 0 {
		envelope.Status = models.TransitStatusUnavailable
		envelope.Message = "no transit routes found between these locations"
		return envelope, nil
	}

	// Top-N cap: extra alternatives past the limit are discarded
	limit := uc.cfg.Maps.MaxTransitRoutes
	if limit <= 0 {
		limit = 3
	}
	if len(rawRoutes) > limit {
		rawRoutes = rawRoutes[:limit]
	}

	for i, raw := range rawRoutes {
		route := uc.buildTransitRoute(i, raw)
		if route == nil {
			continue
		}
		envelope.Routes = append(envelope.Routes, *route)
	}

	envelope.Status = models.TransitStatusAvailable
	envelope.RouteCount = len(envelope.Routes)
	return envelope, nil
}

// TransitSummary digests the first transit alternative into a compact
// comparison record
func (uc *quoteUC) TransitSummary(ctx context.Context, origin, destination string) (*models.TransitSummary, error) {
	directions, err := uc.TransitDirections(ctx, origin, destination, "")
	if err != nil {
		return nil, err
	}
	if directions.Status != models.TransitStatusAvailable || len(directions.Routes) == 0 {
		return &models.TransitSummary{Available: false}, nil
	}

	best := directions.Routes[0]
	return &models.TransitSummary{
		Available:       true,
		FareCents:       best.FareCents,
		FareType:        best.FareType,
		DurationText:    best.DurationText,
		DurationMinutes: best.DurationMinutes,
		DistanceText:    best.DistanceText,
		TransitLines:    best.TransitLines,
		Transfers:       best.TransferCount,
		Summary:         best.Summary,
	}, nil
}

// buildTransitRoute turns one raw alternative into a processed route.
// Routes without legs carry nothing usable and are dropped.
func (uc *quoteUC) buildTransitRoute(index int, raw models.DirectionsRoute) *models.TransitRoute {
	if len(raw.Legs) == 0 {
		return nil
	}
	leg := raw.Legs[0]

	steps := extractTransitSteps(leg.Steps)
	fareCents, fareType := uc.computeTransitFare(steps)

	route := &models.TransitRoute{
		RouteID:         index + 1,
		Summary:         raw.Summary,
		DistanceText:    leg.Distance.Text,
		DistanceMeters:  leg.Distance.Value,
		DurationText:    leg.Duration.Text,
		DurationMinutes: roundSecondsToMinutes(leg.Duration.Value),
		StartAddress:    leg.StartAddress,
		EndAddress:      leg.EndAddress,
		Steps:           steps,
		TotalSteps:      len(steps),
		FareCents:       fareCents,
		FareType:        fareType,
		Currency:        uc.cfg.Fares.Currency,
		TransitLines:    extractTransitLines(steps),
		TransferCount:   countTransfers(steps),
		WalkingDistance: totalWalkingDistance(steps),
	}
	if leg.DepartureTime != nil {
		route.DepartureTime = leg.DepartureTime.Text
	}
	if leg.ArrivalTime != nil {
		route.ArrivalTime = leg.ArrivalTime.Text
	}
	return route
}

// extractTransitSteps classifies raw steps into walking and transit
// steps. Anything that is not a transit step counts as walking.
func extractTransitSteps(rawSteps []models.DirectionsStep) []models.TransitStep {
	steps := make([]models.TransitStep, 0, len(rawSteps))
	for _, raw := range rawSteps {
		step := models.TransitStep{
			Mode:         models.StepModeWalking,
			DistanceText: raw.Distance.Text,
			DurationText: raw.Duration.Text,
			Instructions: raw.HTMLInstructions,
		}
		if strings.EqualFold(raw.TravelMode, "TRANSIT") && raw.TransitDetails != nil {
			step.Mode = models.StepModeTransit
			step.Transit = &models.TransitDetail{
				LineName:      raw.TransitDetails.Line.Name,
				LineShortName: raw.TransitDetails.Line.ShortName,
				VehicleType:   raw.TransitDetails.Line.Vehicle.Type,
				DepartureStop: raw.TransitDetails.DepartureStop.Name,
				ArrivalStop:   raw.TransitDetails.ArrivalStop.Name,
				NumStops:      raw.TransitDetails.NumStops,
				Headsign:      raw.TransitDetails.Headsign,
			}
		}
		steps = append(steps, step)
	}
	return steps
}

// computeTransitFare applies the flat-fare rule: express bus beats
// standard beats free, and a single fare covers the whole route no
// matter how many transit legs it has.
func (uc *quoteUC) computeTransitFare(steps []models.TransitStep) (int, string) {
	hasTransit := false
	for _, step := range steps {
		if step.Transit == nil {
			continue
		}
		hasTransit = true
		if isExpressBus(step.Transit) {
			return uc.cfg.Fares.ExpressBusFareCents, fareTypeExpress
		}
	}
	if hasTransit {
		return uc.cfg.Fares.StandardFareCents, fareTypeStandard
	}
	return 0, fareTypeFree
}

func roundSecondsToMinutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}

func isExpressBus(detail *models.TransitDetail) bool {
	if !strings.EqualFold(detail.VehicleType, "BUS") {
		return false
	}
	return strings.Contains(strings.ToLower(detail.LineName), "express") ||
		strings.Contains(strings.ToLower(detail.LineShortName), "express")
}

// countTransfers counts boardings past the first transit leg
func countTransfers(steps []models.TransitStep) int {
	transitSteps := 0
	for _, step := range steps {
		if step.Mode == models.StepModeTransit {
			transitSteps++
		}
	}
	if transitSteps <= 1 {
		return 0
	}
	return transitSteps - 1
}

// extractTransitLines collects each transit step's short name (falling
// back to the full name) in first-seen order without duplicates
func extractTransitLines(steps []models.TransitStep) []string {
	lines := []string{}
	seen := make(map[string]bool)
	for _, step := range steps {
		if step.Transit == nil {
			continue
		}
		name := step.Transit.LineShortName
		if name == "" {
			name = step.Transit.LineName
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		lines = append(lines, name)
	}
	return lines
}

// totalWalkingDistance sums the numeric prefix of each walking step's
// distance text. The leading token is assumed to be meters; totals
// above a kilometer re-render in km.
func totalWalkingDistance(steps []models.TransitStep) string {
	totalMeters := 0.0
	for _, step := range steps {
		if step.Mode != models.StepModeWalking {
			continue
		}
		totalMeters += leadingNumber(step.DistanceText)
	}
	if totalMeters > 1000 {
		return fmt.Sprintf("%.1f km", totalMeters/1000)
	}
	return fmt.Sprintf("%d m", int(totalMeters))
}

// leadingNumber parses the numeric prefix of a display string like
// "400 m" or "0.6 km", returning 0 when there is none
func leadingNumber(text string) float64 {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", ""), 64)
	if err != nil {
		return 0
	}
	return value
}

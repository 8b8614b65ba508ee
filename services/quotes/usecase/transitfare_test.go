package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetran/wayfare/internal/pkg/models"
	"github.com/davetran/wayfare/services/quotes/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Maps: models.MapsConfig{
			APIKey:           "test-key",
			MaxTransitRoutes: 3,
		},
		Fares: models.FareConfig{
			StandardFareCents:   290,
			ExpressBusFareCents: 700,
			BikeShareFareCents:  395,
			Currency:            "USD",
		},
	}
}

func walkingStep(distanceText string) models.TransitStep {
	return models.TransitStep{
		Mode:         models.StepModeWalking,
		DistanceText: distanceText,
		DurationText: "5 mins",
	}
}

func transitStep(lineName, shortName, vehicleType string) models.TransitStep {
	return models.TransitStep{
		Mode:         models.StepModeTransit,
		DistanceText: "2.1 mi",
		DurationText: "10 mins",
		Transit: &models.TransitDetail{
			LineName:      lineName,
			LineShortName: shortName,
			VehicleType:   vehicleType,
		},
	}
}

func TestComputeTransitFare(t *testing.T) {
	uc := NewQuoteUC(testConfig(), nil).(*quoteUC)

	tests := []struct {
		name      string
		steps     []models.TransitStep
		wantCents int
		wantType  string
	}{
		{"no steps is free", nil, 0, fareTypeFree},
		{"walking only is free", []models.TransitStep{walkingStep("400 m")}, 0, fareTypeFree},
		{"single subway is standard", []models.TransitStep{transitStep("Broadway Local", "N", "SUBWAY")}, 290, fareTypeStandard},
		{"regular bus is standard", []models.TransitStep{transitStep("M15", "M15", "BUS")}, 290, fareTypeStandard},
		{"express bus charges express", []models.TransitStep{transitStep("BxM1 Express", "BxM1", "BUS")}, 700, fareTypeExpress},
		{"express name on a subway stays standard", []models.TransitStep{transitStep("Lexington Express", "4", "SUBWAY")}, 290, fareTypeStandard},
		{"mixed express and subway charges one express fare", []models.TransitStep{
			transitStep("Broadway Local", "N", "SUBWAY"),
			transitStep("QM2 Express", "QM2", "BUS"),
		}, 700, fareTypeExpress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, fareType := uc.computeTransitFare(tt.steps)
			assert.Equal(t, tt.wantCents, cents)
			assert.Equal(t, tt.wantType, fareType)
		})
	}
}

func TestCountTransfers(t *testing.T) {
	assert.Equal(t, 0, countTransfers(nil))
	assert.Equal(t, 0, countTransfers([]models.TransitStep{walkingStep("400 m")}))
	assert.Equal(t, 0, countTransfers([]models.TransitStep{transitStep("N", "N", "SUBWAY")}))
	assert.Equal(t, 1, countTransfers([]models.TransitStep{
		transitStep("N", "N", "SUBWAY"),
		walkingStep("100 m"),
		transitStep("7", "7", "SUBWAY"),
	}))
	assert.Equal(t, 2, countTransfers([]models.TransitStep{
		transitStep("N", "N", "SUBWAY"),
		transitStep("7", "7", "SUBWAY"),
		transitStep("M15", "M15", "BUS"),
	}))
}

func TestExtractTransitLines(t *testing.T) {
	steps := []models.TransitStep{
		walkingStep("400 m"),
		transitStep("Broadway Local", "N", "SUBWAY"),
		transitStep("Broadway Local", "N", "SUBWAY"), // duplicate
		transitStep("Crosstown Select Bus", "", "BUS"), // no short name
	}

	lines := extractTransitLines(steps)
	assert.Equal(t, []string{"N", "Crosstown Select Bus"}, lines)
}

func TestTotalWalkingDistance(t *testing.T) {
	assert.Equal(t, "0 m", totalWalkingDistance(nil))

	assert.Equal(t, "600 m", totalWalkingDistance([]models.TransitStep{
		walkingStep("400 m"),
		transitStep("N", "N", "SUBWAY"),
		walkingStep("200 m"),
	}))

	assert.Equal(t, "1.5 km", totalWalkingDistance([]models.TransitStep{
		walkingStep("900 m"),
		walkingStep("600 m"),
	}))

	// Unparseable distance text counts as zero
	assert.Equal(t, "300 m", totalWalkingDistance([]models.TransitStep{
		walkingStep("300 m"),
		walkingStep("about a block"),
	}))
}

func rawTransitRoute(summary string, steps ...models.DirectionsStep) models.DirectionsRoute {
	return models.DirectionsRoute{
		Summary: summary,
		Legs: []models.DirectionsLeg{{
			Distance:      models.TextValue{Text: "3.4 mi", Value: 5472},
			Duration:      models.TextValue{Text: "28 mins", Value: 1680},
			StartAddress:  "Times Square, New York, NY",
			EndAddress:    "Central Park, New York, NY",
			DepartureTime: &models.TimeText{Text: "2:10 PM"},
			ArrivalTime:   &models.TimeText{Text: "2:38 PM"},
			Steps:         steps,
		}},
	}
}

func rawWalkingStep(distanceText string) models.DirectionsStep {
	return models.DirectionsStep{
		TravelMode:       "WALKING",
		Distance:         models.TextValue{Text: distanceText, Value: 0},
		Duration:         models.TextValue{Text: "5 mins", Value: 300},
		HTMLInstructions: "Walk to the station",
	}
}

func rawSubwayStep(lineName, shortName string) models.DirectionsStep {
	return models.DirectionsStep{
		TravelMode: "TRANSIT",
		Distance:   models.TextValue{Text: "2.1 mi", Value: 3380},
		Duration:   models.TextValue{Text: "10 mins", Value: 600},
		TransitDetails: &models.StepTransitDetails{
			Line: models.TransitLine{
				Name:      lineName,
				ShortName: shortName,
				Vehicle:   models.TransitLineVehicle{Type: "SUBWAY"},
			},
			DepartureStop: models.TransitStop{Name: "Times Sq-42 St"},
			ArrivalStop:   models.TransitStop{Name: "5 Av/59 St"},
			NumStops:      3,
			Headsign:      "Astoria",
		},
	}
}

func TestTransitDirections_SubwayTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaps := mocks.NewMockMapsGW(ctrl)
	mockMaps.EXPECT().
		FetchTransitRoutes(gomock.Any(), "Times Square, New York, NY", "Central Park, New York, NY", "").
		Return([]models.DirectionsRoute{
			rawTransitRoute("Via N",
				rawWalkingStep("400 m"),
				rawSubwayStep("Broadway Local", "N"),
				rawWalkingStep("200 m")),
		}, nil)

	uc := NewQuoteUC(testConfig(), mockMaps)

	directions, err := uc.TransitDirections(context.Background(),
		"Times Square, New York, NY", "Central Park, New York, NY", "")
	require.NoError(t, err)

	assert.Equal(t, models.TransitStatusAvailable, directions.Status)
	require.Len(t, directions.Routes, 1)

	route := directions.Routes[0]
	assert.Equal(t, 1, route.RouteID)
	assert.Equal(t, "Via N", route.Summary)
	assert.Equal(t, 290, route.FareCents)
	assert.Equal(t, "Standard Fare", route.FareType)
	assert.Equal(t, "USD", route.Currency)
	assert.Equal(t, 0, route.TransferCount)
	assert.Equal(t, "600 m", route.WalkingDistance)
	assert.Equal(t, []string{"N"}, route.TransitLines)
	assert.Equal(t, 28, route.DurationMinutes)
	assert.Equal(t, "2:10 PM", route.DepartureTime)
	assert.Equal(t, 3, route.TotalSteps)

	transit := route.Steps[1]
	assert.Equal(t, models.StepModeTransit, transit.Mode)
	require.NotNil(t, transit.Transit)
	assert.Equal(t, "Times Sq-42 St", transit.Transit.DepartureStop)
	assert.Equal(t, 3, transit.Transit.NumStops)
}

func TestTransitDirections_CapsAlternatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	raw := make([]models.DirectionsRoute, 5)
	for i := range raw {
		raw[i] = rawTransitRoute("Alternative", rawSubwayStep("Broadway Local", "N"))
	}

	mockMaps := mocks.NewMockMapsGW(ctrl)
	mockMaps.EXPECT().
		FetchTransitRoutes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(raw, nil)

	uc := NewQuoteUC(testConfig(), mockMaps)

	directions, err := uc.TransitDirections(context.Background(), "A st", "B st", "")
	require.NoError(t, err)

	// Extra alternatives past the cap are discarded, not an error
	assert.Len(t, directions.Routes, 3)
	assert.Equal(t, 3, directions.RouteCount)
}

func TestTransitDirections_UpstreamFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaps := mocks.NewMockMapsGW(ctrl)
	mockMaps.EXPECT().
		FetchTransitRoutes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("upstream down"))

	uc := NewQuoteUC(testConfig(), mockMaps)

	directions, err := uc.TransitDirections(context.Background(), "A st", "B st", "")
	require.NoError(t, err)

	assert.Equal(t, models.TransitStatusError, directions.Status)
	assert.Empty(t, directions.Routes)
	assert.NotEmpty(t, directions.Message)
}

func TestTransitDirections_NoRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaps := mocks.NewMockMapsGW(ctrl)
	mockMaps.EXPECT().
		FetchTransitRoutes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.DirectionsRoute{}, nil)

	uc := NewQuoteUC(testConfig(), mockMaps)

	directions, err := uc.TransitDirections(context.Background(), "A st", "B st", "")
	require.NoError(t, err)
	assert.Equal(t, models.TransitStatusUnavailable, directions.Status)
}

func TestTransitDirections_InvalidInput(t *testing.T) {
	uc := NewQuoteUC(testConfig(), nil)

	_, err := uc.TransitDirections(context.Background(), "", "B st", "")
	assert.Error(t, err)

	_, err = uc.TransitDirections(context.Background(), "A st", "   ", "")
	assert.Error(t, err)
}

func TestTransitSummary_BestRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaps := mocks.NewMockMapsGW(ctrl)
	mockMaps.EXPECT().
		FetchTransitRoutes(gomock.Any(), "A st", "B st", "").
		Return([]models.DirectionsRoute{
			rawTransitRoute("Via N",
				rawWalkingStep("400 m"),
				rawSubwayStep("Broadway Local", "N")),
			rawTransitRoute("Via Q",
				rawSubwayStep("2nd Ave Line", "Q")),
		}, nil)

	uc := NewQuoteUC(testConfig(), mockMaps)

	summary, err := uc.TransitSummary(context.Background(), "A st", "B st")
	require.NoError(t, err)

	assert.True(t, summary.Available)
	assert.Equal(t, 290, summary.FareCents)
	assert.Equal(t, "Standard Fare", summary.FareType)
	assert.Equal(t, "Via N", summary.Summary)
	assert.Equal(t, []string{"N"}, summary.TransitLines)
	assert.Equal(t, 28, summary.DurationMinutes)
}

func TestTransitSummary_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaps := mocks.NewMockMapsGW(ctrl)
	mockMaps.EXPECT().
		FetchTransitRoutes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("upstream down"))

	uc := NewQuoteUC(testConfig(), mockMaps)

	summary, err := uc.TransitSummary(context.Background(), "A st", "B st")
	require.NoError(t, err)
	assert.False(t, summary.Available)
	assert.Zero(t, summary.FareCents)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetran/wayfare/internal/pkg/models"
)

func mapsTestClient(serverURL string) *MapsClient {
	return NewMapsClient(models.MapsConfig{
		APIKey:         "test-key",
		BaseURL:        serverURL,
		TimeoutSeconds: 5,
	})
}

func TestMapsClient_FetchRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/directions/json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Times Square, New York, NY", q.Get("origin"))
		assert.Equal(t, "driving", q.Get("mode"))
		assert.Equal(t, "true", q.Get("alternatives"))
		assert.Equal(t, "test-key", q.Get("key"))

		w.Write([]byte(`{"status":"OK","routes":[
			{"summary":"7th Ave","legs":[{
				"distance":{"text":"1.8 mi","value":2897},
				"duration":{"text":"12 mins","value":737},
				"start_address":"Times Square, New York, NY",
				"end_address":"Central Park, New York, NY",
				"steps":[{},{},{}]
			}]},
			{"summary":"Broadway","legs":[{"distance":{"text":"2.0 mi","value":3218},"duration":{"text":"14 mins","value":840},"steps":[]}]}
		]}`))
	}))
	defer server.Close()

	route, err := mapsTestClient(server.URL).FetchRoute(context.Background(),
		"Times Square, New York, NY", "Central Park, New York, NY", models.ModeDriving)
	require.NoError(t, err)

	// First alternative wins; duration rounds to the nearest minute
	assert.Equal(t, "driving", route.Mode)
	assert.Equal(t, 2897, route.DistanceMeters)
	assert.Equal(t, 12, route.DurationMinutes)
	assert.Equal(t, "12 mins", route.DurationText)
	assert.Equal(t, 3, route.StepCount)
}

func TestMapsClient_FetchRoute_EmptyRouteSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","routes":[]}`))
	}))
	defer server.Close()

	_, err := mapsTestClient(server.URL).FetchRoute(context.Background(), "A", "B", models.ModeWalking)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamStatus))
}

func TestMapsClient_FetchRoute_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","routes":[]}`))
	}))
	defer server.Close()

	_, err := mapsTestClient(server.URL).FetchRoute(context.Background(), "A", "B", models.ModeDriving)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamStatus))
}

func TestMapsClient_FetchTransitRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "transit", q.Get("mode"))
		assert.Equal(t, "subway|bus|rail", q.Get("transit_mode"))
		assert.Equal(t, "now", q.Get("departure_time"))

		w.Write([]byte(`{"status":"OK","routes":[
			{"summary":"Via N","legs":[{"distance":{"text":"2.1 mi","value":3380},"duration":{"text":"18 mins","value":1080},"steps":[]}]},
			{"summary":"Via Q","legs":[{"distance":{"text":"2.3 mi","value":3701},"duration":{"text":"21 mins","value":1260},"steps":[]}]}
		]}`))
	}))
	defer server.Close()

	routes, err := mapsTestClient(server.URL).FetchTransitRoutes(context.Background(), "A", "B", "")
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "Via N", routes[0].Summary)
}

func TestMapsClient_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "Times Square, New York, NY", r.URL.Query().Get("address"))

		w.Write([]byte(`{"status":"OK","results":[
			{"formatted_address":"Manhattan, NY 10036, USA",
			 "geometry":{"location":{"lat":40.758,"lng":-73.9855}},
			 "place_id":"ChIJmQJIxlVYwokRLgeuocVOGVU",
			 "types":["neighborhood"]},
			{"formatted_address":"Second Match","geometry":{"location":{"lat":1,"lng":2}}}
		]}`))
	}))
	defer server.Close()

	point, err := mapsTestClient(server.URL).Geocode(context.Background(), "Times Square, New York, NY")
	require.NoError(t, err)

	// First result wins
	assert.Equal(t, 40.758, point.Latitude)
	assert.Equal(t, -73.9855, point.Longitude)
	assert.Equal(t, "Manhattan, NY 10036, USA", point.FormattedAddress)
	assert.Equal(t, "ChIJmQJIxlVYwokRLgeuocVOGVU", point.PlaceID)
}

func TestMapsClient_Geocode_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer server.Close()

	_, err := mapsTestClient(server.URL).Geocode(context.Background(), "gibberish input")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamStatus))
}

func TestRoundSecondsToMinutes(t *testing.T) {
	assert.Equal(t, 0, roundSecondsToMinutes(0))
	assert.Equal(t, 1, roundSecondsToMinutes(30))
	assert.Equal(t, 12, roundSecondsToMinutes(737))
	assert.Equal(t, 12, roundSecondsToMinutes(720))
}

package models

import "time"

// Transit step modes after classification
const (
	StepModeWalking = "walking"
	StepModeTransit = "transit"
)

// TransitDetail holds line metadata for a transit step
type TransitDetail struct {
	LineName      string `json:"line_name"`
	LineShortName string `json:"line_short_name,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	DepartureStop string `json:"departure_stop,omitempty"`
	ArrivalStop   string `json:"arrival_stop,omitempty"`
	NumStops      int    `json:"num_stops,omitempty"`
	Headsign      string `json:"headsign,omitempty"`
}

// TransitStep is one leg of a transit route. Transit is non-nil only
// when Mode is transit.
type TransitStep struct {
	Mode         string         `json:"mode"`
	DistanceText string         `json:"distance"`
	DurationText string         `json:"duration"`
	Instructions string         `json:"instructions,omitempty"`
	Transit      *TransitDetail `json:"transit,omitempty"`
}

// TransitRoute is a processed transit alternative. Fare, TransitLines,
// TransferCount and WalkingDistance are derived from Steps and never
// mutated independently.
type TransitRoute struct {
	RouteID         int           `json:"route_id"`
	Summary         string        `json:"summary"`
	DistanceText    string        `json:"distance"`
	DistanceMeters  int           `json:"distance_meters"`
	DurationText    string        `json:"duration"`
	DurationMinutes int           `json:"duration_minutes"`
	StartAddress    string        `json:"start_address"`
	EndAddress      string        `json:"end_address"`
	DepartureTime   string        `json:"departure_time"`
	ArrivalTime     string        `json:"arrival_time"`
	Steps           []TransitStep `json:"steps"`
	TotalSteps      int           `json:"total_steps"`
	FareCents       int           `json:"fare_cents"`
	FareType        string        `json:"fare_type"`
	Currency        string        `json:"currency"`
	TransitLines    []string      `json:"transit_lines"`
	TransferCount   int           `json:"transfers"`
	WalkingDistance string        `json:"walking_distance"`
}

// TransitDirections is the status envelope around processed transit
// routes. Degradation is carried in Status, never raised to the caller.
type TransitDirections struct {
	Status      string         `json:"status"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Routes      []TransitRoute `json:"routes"`
	RouteCount  int            `json:"route_count"`
	Message     string         `json:"message,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Transit envelope statuses
const (
	TransitStatusAvailable   = "available"
	TransitStatusUnavailable = "unavailable"
	TransitStatusError       = "error"
)

// TransitSummary is the best-route digest used for quick comparison
type TransitSummary struct {
	Available       bool     `json:"available"`
	FareCents       int      `json:"fare_cents,omitempty"`
	FareType        string   `json:"fare_type,omitempty"`
	DurationText    string   `json:"duration,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	DistanceText    string   `json:"distance,omitempty"`
	TransitLines    []string `json:"transit_lines,omitempty"`
	Transfers       int      `json:"transfers"`
	Summary         string   `json:"summary,omitempty"`
}

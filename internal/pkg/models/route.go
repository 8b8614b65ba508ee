package models

// Transportation modes queried from the mapping provider
const (
	ModeDriving   = "driving"
	ModeTransit   = "transit"
	ModeWalking   = "walking"
	ModeBicycling = "bicycling"
)

// DirectionModes lists every mode fetched during aggregation
var DirectionModes = []string{ModeDriving, ModeTransit, ModeWalking, ModeBicycling}

// ModeRoute summarizes the selected route for one transportation mode.
// Distance and duration carry both machine units and the provider's own
// display text; the text is provider-authoritative and may disagree
// slightly with the rounded numeric value.
type ModeRoute struct {
	Mode            string `json:"mode"`
	DistanceText    string `json:"distance"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationText    string `json:"duration"`
	DurationMinutes int    `json:"duration_minutes"`
	StartAddress    string `json:"start_address"`
	EndAddress      string `json:"end_address"`
	StepCount       int    `json:"steps"`
}

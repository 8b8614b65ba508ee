package models

// Wire-format structs for the mapping provider's directions and
// geocoding APIs. Decoded by the maps gateway; the transit fare engine
// consumes DirectionsRoute directly.

// TextValue is the provider's paired display-text/machine-value field
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// TimeText carries a provider-formatted departure or arrival time
type TimeText struct {
	Text string `json:"text"`
}

// TransitLineVehicle identifies the vehicle class of a transit line
type TransitLineVehicle struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

// TransitLine describes the line serving a transit step
type TransitLine struct {
	Name      string             `json:"name"`
	ShortName string             `json:"short_name"`
	Vehicle   TransitLineVehicle `json:"vehicle"`
}

// TransitStop is one end of a transit step
type TransitStop struct {
	Name string `json:"name"`
}

// StepTransitDetails is the provider's transit metadata for one step
type StepTransitDetails struct {
	Line          TransitLine `json:"line"`
	DepartureStop TransitStop `json:"departure_stop"`
	ArrivalStop   TransitStop `json:"arrival_stop"`
	NumStops      int         `json:"num_stops"`
	Headsign      string      `json:"headsign"`
}

// DirectionsStep is one raw step of a route leg
type DirectionsStep struct {
	TravelMode       string              `json:"travel_mode"`
	Distance         TextValue           `json:"distance"`
	Duration         TextValue           `json:"duration"`
	HTMLInstructions string              `json:"html_instructions"`
	TransitDetails   *StepTransitDetails `json:"transit_details,omitempty"`
}

// DirectionsLeg is one leg of a returned route
type DirectionsLeg struct {
	Distance      TextValue        `json:"distance"`
	Duration      TextValue        `json:"duration"`
	StartAddress  string           `json:"start_address"`
	EndAddress    string           `json:"end_address"`
	DepartureTime *TimeText        `json:"departure_time,omitempty"`
	ArrivalTime   *TimeText        `json:"arrival_time,omitempty"`
	Steps         []DirectionsStep `json:"steps"`
}

// DirectionsRoute is one route alternative
type DirectionsRoute struct {
	Summary string          `json:"summary"`
	Legs    []DirectionsLeg `json:"legs"`
}

// DirectionsResponse is the top-level directions payload
type DirectionsResponse struct {
	Status       string            `json:"status"`
	Routes       []DirectionsRoute `json:"routes"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

// LatLng is a raw coordinate pair
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeGeometry wraps the geocoder's location field
type GeocodeGeometry struct {
	Location LatLng `json:"location"`
}

// GeocodeResult is one geocoder match
type GeocodeResult struct {
	FormattedAddress string          `json:"formatted_address"`
	Geometry         GeocodeGeometry `json:"geometry"`
	PlaceID          string          `json:"place_id"`
	Types            []string        `json:"types"`
}

// GeocodeResponse is the top-level geocoding payload
type GeocodeResponse struct {
	Status  string          `json:"status"`
	Results []GeocodeResult `json:"results"`
}

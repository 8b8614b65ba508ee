package models

// GeoPoint is a resolved geographic location returned by the geocoder
type GeoPoint struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
	PlaceID          string  `json:"place_id,omitempty"`
}

// Location pairs a free-text address with its optional resolved
// coordinates. Resolved is nil when geocoding failed; it is never
// mutated after resolution.
type Location struct {
	Address  string    `json:"address"`
	Resolved *GeoPoint `json:"resolved,omitempty"`
}

package fare

import "math"

// GeoPoint is a value object for a selected trip endpoint. Label is free text
// used only for display and for substring lookups against the fare tables; it
// is never parsed for any other meaning.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
}

// Validate checks that both coordinates are real, finite numbers.
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) {
		return NewInvalidInputError("latitude is not a valid number")
	}
	if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
		return NewInvalidInputError("longitude is not a valid number")
	}
	return nil
}

// RouteResult is the normalized outcome of one routing-provider call.
// DistanceKmValue carries the unrounded kilometers for fare math; DistanceKm
// is the 2-decimal display string and must never feed back into arithmetic.
type RouteResult struct {
	DistanceKm      string  `json:"distance_km"`
	DistanceKmValue float64 `json:"-"`
	DurationText    string  `json:"duration_text"`
}

// FareQuote is the terminal output of one fare calculation.
type FareQuote struct {
	Fare         string `json:"fare"`
	DistanceKm   string `json:"distance_km"`
	DurationText string `json:"duration_text"`
}

package fare

import (
	"math"
	"strings"
)

// Fare schedule constants. All fares are in pesos, all distances in kilometers.
const (
	tricycleRegularPerHead = 20.0

	tricycleSpecialBase   = 30.0
	tricycleSpecialFreeKm = 3.0
	tricycleSpecialPerKm  = 5.0

	busMinFare    = 20.0
	busMaxFare    = 45.0
	busFlatKm     = 15.0
	busCapKm      = 28.0
	busInTownFare = 20.0

	jeepMinFare = 13.0
	jeepMidFare = 20.0
	jeepMaxFare = 40.0
	jeepFlatKm  = 4.0
	jeepMidKm   = 15.0
	jeepCapKm   = 28.0

	discountMultiplier = 0.80
)

// specialTricycleFare is a fixed fare for one pre-enumerated origin/destination pair.
type specialTricycleFare struct {
	OriginFragment      string
	DestinationFragment string
	Fare                float64
}

// specialTricycleFares lists label-fragment pairs that bypass the distance
// formula entirely. Matching is case-insensitive substring containment on both
// labels, so a fragment can over-match longer place names that share it
// ("Poblacion Extension" matches "poblacion"). That looseness is inherited
// behavior and is pinned by tests; do not tighten it here.
var specialTricycleFares = []specialTricycleFare{
	{OriginFragment: "terminal", DestinationFragment: "public market", Fare: 30},
	{OriginFragment: "public market", DestinationFragment: "terminal", Fare: 30},
	{OriginFragment: "poblacion", DestinationFragment: "municipal hall", Fare: 30},
	{OriginFragment: "municipal hall", DestinationFragment: "poblacion", Fare: 30},
	{OriginFragment: "town plaza", DestinationFragment: "terminal", Fare: 30},
	{OriginFragment: "terminal", DestinationFragment: "town plaza", Fare: 30},
}

// inTownFragments lists local place-name fragments. A bus trip whose
// destination label contains any of them gets the flat in-town fare with no
// discount applied. Same loose substring semantics as the special pairs.
var inTownFragments = []string{
	"poblacion",
	"town proper",
	"town plaza",
	"public market",
	"municipal hall",
	"terminal",
}

// ComputeFare returns the unrounded peso fare for a trip. It is pure and
// deterministic: no I/O, no ambient state, and the only error is an
// unrecognized category.
//
// passengerCount must already be clamped to [MinPassengers, MaxPassengers] by
// the caller; it is only meaningful for TricycleRegular. discountEligible is
// only meaningful for Bus and Jeep. The two tricycle variants return a fare
// already rounded to the nearest multiple of 5; the caller must not apply the
// final ceiling step to them.
func ComputeFare(
	category VehicleCategory,
	distanceKmValue float64,
	passengerCount int,
	discountEligible bool,
	originLabel, destinationLabel string,
) (float64, error) {
	switch category {
	case TricycleRegular:
		return roundToNearestFive(tricycleRegularPerHead * float64(passengerCount)), nil

	case TricycleSpecial:
		// Fixed pairs take precedence over the distance formula.
		for _, sp := range specialTricycleFares {
			if containsFold(originLabel, sp.OriginFragment) && containsFold(destinationLabel, sp.DestinationFragment) {
				return roundToNearestFive(sp.Fare), nil
			}
		}
		excess := math.Max(0, distanceKmValue-tricycleSpecialFreeKm)
		return roundToNearestFive(tricycleSpecialBase + tricycleSpecialPerKm*excess), nil

	case Bus:
		// In-town flat fare is a hard override: the discount never applies.
		if IsInTownDestination(destinationLabel) {
			return busInTownFare, nil
		}
		fare := tieredFare(distanceKmValue,
			busFlatKm, busCapKm,
			busMinFare, busMinFare, busMaxFare)
		if discountEligible {
			fare *= discountMultiplier
		}
		return fare, nil

	case Jeep:
		var fare float64
		switch {
		case distanceKmValue <= jeepFlatKm:
			fare = jeepMinFare
		case distanceKmValue <= jeepMidKm:
			fare = lerp(distanceKmValue, jeepFlatKm, jeepMidKm, jeepMinFare, jeepMidFare)
		case distanceKmValue <= jeepCapKm:
			fare = lerp(distanceKmValue, jeepMidKm, jeepCapKm, jeepMidFare, jeepMaxFare)
		default:
			fare = jeepMaxFare
		}
		// Unlike the bus schedule, the jeep discount has no in-town carve-out.
		if discountEligible {
			fare *= discountMultiplier
		}
		return fare, nil

	case PersonalVehicle:
		return 0, nil

	default:
		return 0, NewUnsupportedCategoryError(category)
	}
}

// IsInTownDestination reports whether a destination label matches the in-town
// allow-list that triggers the flat bus fare.
func IsInTownDestination(label string) bool {
	for _, fragment := range inTownFragments {
		if containsFold(label, fragment) {
			return true
		}
	}
	return false
}

// tieredFare evaluates a flat/linear/capped three-tier schedule.
func tieredFare(d, flatKm, capKm, minFare, lerpFrom, maxFare float64) float64 {
	switch {
	case d <= flatKm:
		return minFare
	case d <= capKm:
		return lerp(d, flatKm, capKm, lerpFrom, maxFare)
	default:
		return maxFare
	}
}

// lerp interpolates linearly between (d0, f0) and (d1, f1). Evaluated in
// float64 with no intermediate rounding so chained tiers stay continuous.
func lerp(d, d0, d1, f0, f1 float64) float64 {
	return f0 + (d-d0)*(f1-f0)/(d1-d0)
}

// roundToNearestFive rounds half-up to the nearest multiple of 5 (32 -> 30, 33 -> 35).
func roundToNearestFive(v float64) float64 {
	return math.Floor(v/5+0.5) * 5
}

// containsFold is a case-insensitive substring check.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

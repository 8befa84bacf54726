package routing

import (
	"fmt"
	"strconv"

	"github.com/bayanlink/service-fares/internal/domain/fare"
)

const navigationBaseURL = "https://www.google.com/maps/dir/"

// BuildNavigationURL formats a turn-by-turn navigation deep link for a driving
// trip between two points. Used for the personal-vehicle category, which has
// no fare; the URL is handed to the client to open, no network access happens
// here. Coordinate validation matches the resolver's.
func BuildNavigationURL(origin, destination fare.GeoPoint) (string, error) {
	if err := origin.Validate(); err != nil {
		return "", err
	}
	if err := destination.Validate(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s?api=1&origin=%s,%s&destination=%s,%s&travelmode=driving",
		navigationBaseURL,
		formatCoord(origin.Latitude), formatCoord(origin.Longitude),
		formatCoord(destination.Latitude), formatCoord(destination.Longitude),
	), nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

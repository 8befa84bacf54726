package routing

import (
	"context"
	"fmt"

	"github.com/bayanlink/service-fares/internal/domain/fare"
)

// Resolver turns two trip endpoints into a normalized RouteResult by way of
// the routing provider. It validates its inputs before any network I/O and
// holds no state between calls.
type Resolver struct {
	provider Provider
}

// NewResolver creates a Resolver backed by the given provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve validates both endpoints, queries the provider once, and normalizes
// the result. DistanceKmValue stays unrounded for downstream fare math; only
// the display string is rounded to two decimals.
func (r *Resolver) Resolve(ctx context.Context, origin, destination fare.GeoPoint) (fare.RouteResult, error) {
	if err := origin.Validate(); err != nil {
		return fare.RouteResult{}, err
	}
	if err := destination.Validate(); err != nil {
		return fare.RouteResult{}, err
	}

	leg, err := r.provider.Route(ctx, origin, destination)
	if err != nil {
		return fare.RouteResult{}, err
	}

	distanceKm := leg.DistanceMeters / 1000.0
	return fare.RouteResult{
		DistanceKm:      fmt.Sprintf("%.2f", distanceKm),
		DistanceKmValue: distanceKm,
		DurationText:    formatDuration(leg.DurationSeconds),
	}, nil
}

// formatDuration renders seconds as "H hour(s) M min(s)", dropping the hour
// component at zero. Anything under a minute collapses to the fallback text.
func formatDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	if hours == 0 && minutes == 0 {
		return "Less than a minute"
	}
	if hours == 0 {
		return fmt.Sprintf("%d %s", minutes, pluralize(minutes, "min", "mins"))
	}
	return fmt.Sprintf("%d %s %d %s",
		hours, pluralize(hours, "hour", "hours"),
		minutes, pluralize(minutes, "min", "mins"))
}

func pluralize(n int64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

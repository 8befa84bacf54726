package routing

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanlink/service-fares/internal/domain/fare"
)

// stubProvider returns a canned leg and counts how often it was called.
type stubProvider struct {
	leg   RouteLeg
	err   error
	calls int
}

func (s *stubProvider) Route(_ context.Context, _, _ fare.GeoPoint) (RouteLeg, error) {
	s.calls++
	if s.err != nil {
		return RouteLeg{}, s.err
	}
	return s.leg, nil
}

func validPoint(label string) fare.GeoPoint {
	return fare.GeoPoint{Latitude: 10.72, Longitude: 122.56, Label: label}
}

func TestResolver_Resolve_NormalizesDistance(t *testing.T) {
	provider := &stubProvider{leg: RouteLeg{DistanceMeters: 10450, DurationSeconds: 1320}}
	resolver := NewResolver(provider)

	got, err := resolver.Resolve(context.Background(), validPoint("Terminal"), validPoint("Capitol"))
	require.NoError(t, err)

	assert.Equal(t, "10.45", got.DistanceKm)
	assert.InDelta(t, 10.45, got.DistanceKmValue, 1e-9)
	assert.Equal(t, "22 mins", got.DurationText)
}

func TestResolver_Resolve_KeepsUnroundedValue(t *testing.T) {
	// 10456 m renders as "10.46" but the numeric value must stay unrounded.
	provider := &stubProvider{leg: RouteLeg{DistanceMeters: 10456, DurationSeconds: 60}}
	resolver := NewResolver(provider)

	got, err := resolver.Resolve(context.Background(), validPoint(""), validPoint(""))
	require.NoError(t, err)

	assert.Equal(t, "10.46", got.DistanceKm)
	assert.InDelta(t, 10.456, got.DistanceKmValue, 1e-9)
}

func TestResolver_Resolve_InvalidCoordinates(t *testing.T) {
	provider := &stubProvider{leg: RouteLeg{DistanceMeters: 1000, DurationSeconds: 60}}
	resolver := NewResolver(provider)

	bad := fare.GeoPoint{Latitude: math.NaN(), Longitude: 122.56, Label: "broken"}
	_, err := resolver.Resolve(context.Background(), bad, validPoint("Capitol"))

	var invalid *fare.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, provider.calls, "no provider call may happen for invalid input")

	_, err = resolver.Resolve(context.Background(), validPoint("Terminal"), fare.GeoPoint{Longitude: math.Inf(1)})
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, provider.calls)
}

func TestResolver_Resolve_PropagatesProviderErrors(t *testing.T) {
	provider := &stubProvider{err: fare.NewRouteNotFoundError("a", "b")}
	resolver := NewResolver(provider)

	_, err := resolver.Resolve(context.Background(), validPoint("a"), validPoint("b"))

	var notFound *fare.RouteNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{seconds: 0, want: "Less than a minute"},
		{seconds: 45, want: "Less than a minute"},
		{seconds: 60, want: "1 min"},
		{seconds: 150, want: "2 mins"},
		{seconds: 3599, want: "59 mins"},
		{seconds: 3600, want: "1 hour 0 mins"},
		{seconds: 3660, want: "1 hour 1 min"},
		{seconds: 5400, want: "1 hour 30 mins"},
		{seconds: 7500, want: "2 hours 5 mins"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.seconds), "formatDuration(%d)", tt.seconds)
	}
}

package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bayanlink/service-fares/internal/domain/fare"
)

// RouteLeg is the raw distance/duration pair a routing provider reports for
// one trip.
type RouteLeg struct {
	DistanceMeters  float64
	DurationSeconds int64
}

// Provider is the contract for an external routing service. One call per fare
// calculation; implementations perform no retries.
type Provider interface {
	// Route returns distance and duration for a driving trip between two points.
	Route(ctx context.Context, origin, destination fare.GeoPoint) (RouteLeg, error)
}

// GoogleRoutesClient calls the Google Routes API (computeRoutes) for driving
// routes in metric units, requesting only the distance and duration fields.
type GoogleRoutesClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewGoogleRoutesClient creates a client for the given endpoint and API key.
// httpClient may be nil, in which case http.DefaultClient is used; any timeout
// policy belongs to the injected client.
func NewGoogleRoutesClient(baseURL, apiKey string, httpClient *http.Client) *GoogleRoutesClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GoogleRoutesClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type waypoint struct {
	Location struct {
		LatLng latLng `json:"latLng"`
	} `json:"location"`
}

type computeRoutesRequest struct {
	Origin      waypoint `json:"origin"`
	Destination waypoint `json:"destination"`
	TravelMode  string   `json:"travelMode"`
	Units       string   `json:"units"`
}

type computeRoutesResponse struct {
	Routes []struct {
		DistanceMeters float64         `json:"distanceMeters"`
		Duration       durationSeconds `json:"duration"`
	} `json:"routes"`
}

// durationSeconds accepts both duration encodings the provider contract
// allows: a string of seconds with an "s" suffix ("165s") or a bare number.
type durationSeconds int64

func (d *durationSeconds) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "s"), 64)
		if err != nil {
			return fmt.Errorf("malformed duration %q: %w", s, err)
		}
		*d = durationSeconds(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("malformed duration %s", string(b))
	}
	*d = durationSeconds(n)
	return nil
}

func newWaypoint(p fare.GeoPoint) waypoint {
	var w waypoint
	w.Location.LatLng = latLng{Latitude: p.Latitude, Longitude: p.Longitude}
	return w
}

// Route issues a single computeRoutes request. Zero candidate routes map to
// RouteNotFoundError; network, HTTP, and payload failures map to
// ProviderTransportError. No partial results are returned.
func (c *GoogleRoutesClient) Route(ctx context.Context, origin, destination fare.GeoPoint) (RouteLeg, error) {
	reqBody := computeRoutesRequest{
		Origin:      newWaypoint(origin),
		Destination: newWaypoint(destination),
		TravelMode:  "DRIVE",
		Units:       "METRIC",
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return RouteLeg{}, fare.NewProviderTransportError(fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/directions/v2:computeRoutes", bytes.NewReader(payload))
	if err != nil {
		return RouteLeg{}, fare.NewProviderTransportError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", "routes.distanceMeters,routes.duration")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RouteLeg{}, fare.NewProviderTransportError(fmt.Errorf("routing request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return RouteLeg{}, fare.NewProviderTransportError(
			fmt.Errorf("routing provider returned status %d: %s", resp.StatusCode, string(body)))
	}

	var parsed computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return RouteLeg{}, fare.NewProviderTransportError(fmt.Errorf("decode response: %w", err))
	}

	if len(parsed.Routes) == 0 {
		return RouteLeg{}, fare.NewRouteNotFoundError(origin.Label, destination.Label)
	}

	// The provider may return alternates; the first route is always used.
	route := parsed.Routes[0]
	return RouteLeg{
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: int64(route.Duration),
	}, nil
}

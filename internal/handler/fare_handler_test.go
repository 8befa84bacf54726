package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bayanlink/service-fares/internal/application"
	"github.com/bayanlink/service-fares/internal/domain/fare"
)

type stubResolver struct {
	result fare.RouteResult
	err    error
	calls  int
}

func (s *stubResolver) Resolve(_ context.Context, _, _ fare.GeoPoint) (fare.RouteResult, error) {
	s.calls++
	if s.err != nil {
		return fare.RouteResult{}, s.err
	}
	return s.result, nil
}

func newFareRouter(resolver *stubResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := application.NewFareService(resolver, nil, zap.NewNop())
	NewFareHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFareHandler_EstimateFare(t *testing.T) {
	resolver := &stubResolver{result: fare.RouteResult{
		DistanceKm:      "10.00",
		DistanceKmValue: 10,
		DurationText:    "25 mins",
	}}
	router := newFareRouter(resolver)

	w := postJSON(t, router, "/api/v1/fares/estimate", `{
		"category": "jeep",
		"passenger_count": 1,
		"origin": {"latitude": 10.72, "longitude": 122.56, "label": "Terminal"},
		"destination": {"latitude": 10.75, "longitude": 122.59, "label": "Provincial Capitol"}
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    fare.FareQuote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "17.00", resp.Data.Fare)
	assert.Equal(t, "10.00", resp.Data.DistanceKm)
	assert.Equal(t, "25 mins", resp.Data.DurationText)
}

func TestFareHandler_EstimateFare_NonNumericCoordinate(t *testing.T) {
	resolver := &stubResolver{}
	router := newFareRouter(resolver)

	w := postJSON(t, router, "/api/v1/fares/estimate", `{
		"category": "jeep",
		"origin": {"latitude": "abc", "longitude": 122.56},
		"destination": {"latitude": 10.75, "longitude": 122.59}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, resolver.calls, "binding failures must stop before route resolution")
}

func TestFareHandler_EstimateFare_UnknownCategory(t *testing.T) {
	resolver := &stubResolver{}
	router := newFareRouter(resolver)

	w := postJSON(t, router, "/api/v1/fares/estimate", `{
		"category": "boat",
		"origin": {"latitude": 10.72, "longitude": 122.56},
		"destination": {"latitude": 10.75, "longitude": 122.59}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, resolver.calls, "unknown categories must be rejected before route resolution")
}

func TestFareHandler_EstimateFare_MissingCategory(t *testing.T) {
	router := newFareRouter(&stubResolver{})

	w := postJSON(t, router, "/api/v1/fares/estimate", `{
		"origin": {"latitude": 10.72, "longitude": 122.56},
		"destination": {"latitude": 10.75, "longitude": 122.59}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFareHandler_EstimateFare_MissingCoordinates(t *testing.T) {
	router := newFareRouter(&stubResolver{})

	w := postJSON(t, router, "/api/v1/fares/estimate", `{
		"category": "bus",
		"origin": {"label": "Terminal"},
		"destination": {"latitude": 10.75, "longitude": 122.59}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFareHandler_EstimateFare_RouteNotFound(t *testing.T) {
	resolver := &stubResolver{err: fare.NewRouteNotFoundError("Terminal", "Nowhere")}
	router := newFareRouter(resolver)

	w := postJSON(t, router, "/api/v1/fares/estimate", `{
		"category": "bus",
		"origin": {"latitude": 10.72, "longitude": 122.56, "label": "Terminal"},
		"destination": {"latitude": 10.75, "longitude": 122.59, "label": "Nowhere"}
	}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFareHandler_EstimateFare_ProviderFailure(t *testing.T) {
	resolver := &stubResolver{err: fare.NewProviderTransportError(context.DeadlineExceeded)}
	router := newFareRouter(resolver)

	w := postJSON(t, router, "/api/v1/fares/estimate", `{
		"category": "bus",
		"origin": {"latitude": 10.72, "longitude": 122.56},
		"destination": {"latitude": 10.75, "longitude": 122.59}
	}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestFareHandler_NavigationLink(t *testing.T) {
	router := newFareRouter(&stubResolver{})

	w := postJSON(t, router, "/api/v1/fares/navigation-link", `{
		"origin": {"latitude": 10.72, "longitude": 122.56},
		"destination": {"latitude": 10.75, "longitude": 122.59}
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t,
		"https://www.google.com/maps/dir/?api=1&origin=10.72,122.56&destination=10.75,122.59&travelmode=driving",
		resp.Data.URL,
	)
}

func TestFareHandler_NavigationLink_MissingBody(t *testing.T) {
	router := newFareRouter(&stubResolver{})

	w := postJSON(t, router, "/api/v1/fares/navigation-link", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bayanlink/service-fares/internal/application"
	"github.com/bayanlink/service-fares/internal/domain/fare"
	"github.com/bayanlink/service-fares/internal/response"
)

// FareHandler handles HTTP requests for fare estimation.
type FareHandler struct {
	service *application.FareService
}

// NewFareHandler creates a new FareHandler.
func NewFareHandler(service *application.FareService) *FareHandler {
	return &FareHandler{service: service}
}

// RegisterRoutes registers all fare routes on the given router group.
func (h *FareHandler) RegisterRoutes(r *gin.RouterGroup) {
	fares := r.Group("/api/v1/fares")
	{
		fares.POST("/estimate", h.EstimateFare)
		fares.POST("/navigation-link", h.NavigationLink)
	}
}

// geoPointDTO is the wire form of a trip endpoint. Coordinates are pointers so
// a missing field is distinguishable from zero and rejected at the edge.
type geoPointDTO struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Label     string   `json:"label"`
}

func (d *geoPointDTO) toDomain() fare.GeoPoint {
	return fare.GeoPoint{
		Latitude:  *d.Latitude,
		Longitude: *d.Longitude,
		Label:     d.Label,
	}
}

type estimateFareRequest struct {
	Category         string       `json:"category" binding:"required"`
	PassengerCount   int          `json:"passenger_count"`
	DiscountEligible bool         `json:"discount_eligible"`
	Origin           *geoPointDTO `json:"origin" binding:"required"`
	Destination      *geoPointDTO `json:"destination" binding:"required"`
}

type navigationLinkRequest struct {
	Origin      *geoPointDTO `json:"origin" binding:"required"`
	Destination *geoPointDTO `json:"destination" binding:"required"`
}

// EstimateFare handles POST /api/v1/fares/estimate.
func (h *FareHandler) EstimateFare(c *gin.Context) {
	var req estimateFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := fare.ParseVehicleCategory(req.Category)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	quote, err := h.service.EstimateFare(c.Request.Context(), application.EstimateFareRequest{
		Category:         category,
		PassengerCount:   req.PassengerCount,
		DiscountEligible: req.DiscountEligible,
		Origin:           req.Origin.toDomain(),
		Destination:      req.Destination.toDomain(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, quote)
}

// NavigationLink handles POST /api/v1/fares/navigation-link.
func (h *FareHandler) NavigationLink(c *gin.Context) {
	var req navigationLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	url, err := h.service.NavigationLink(req.Origin.toDomain(), req.Destination.toDomain())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"url": url})
}

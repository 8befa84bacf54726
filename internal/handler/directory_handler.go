package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bayanlink/service-fares/internal/application"
	"github.com/bayanlink/service-fares/internal/response"
)

// DirectoryHandler handles HTTP requests for the municipal directory.
type DirectoryHandler struct {
	service *application.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(service *application.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// RegisterRoutes registers all directory routes on the given router group.
func (h *DirectoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	listings := r.Group("/api/v1/listings")
	{
		listings.GET("", h.ListListings)
		listings.GET("/:id", h.GetListing)
		listings.POST("", h.CreateListing)
	}
}

// ListListings handles GET /api/v1/listings.
func (h *DirectoryHandler) ListListings(c *gin.Context) {
	page, limit := parsePagination(c)
	category := c.Query("category")

	items, total, err := h.service.ListListings(c.Request.Context(), category, page, limit)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Paginated(c, items, total, page, limit)
}

// GetListing handles GET /api/v1/listings/:id.
func (h *DirectoryHandler) GetListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	result, err := h.service.GetListing(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateListing handles POST /api/v1/listings.
func (h *DirectoryHandler) CreateListing(c *gin.Context) {
	var req application.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateListing(c.Request.Context(), req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, result)
}

// parsePagination extracts page/limit query parameters with sane bounds.
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

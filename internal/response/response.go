package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bayanlink/service-fares/internal/domain/directory"
	"github.com/bayanlink/service-fares/internal/domain/fare"
)

// envelope is the standard JSON response wrapper.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// paginatedEnvelope wraps list responses with paging metadata.
type paginatedEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

// Paginated writes a 200 list response with paging metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, paginatedEnvelope{
		Success: true,
		Data:    items,
		Total:   total,
		Page:    page,
		Limit:   limit,
	})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Error: msg})
}

// Error maps a domain error to an HTTP status and writes it. Unknown errors
// become opaque 500s so internals never leak to clients.
func Error(c *gin.Context, err error) {
	var (
		invalidInput *fare.InvalidInputError
		notFound     *fare.RouteNotFoundError
		transport    *fare.ProviderTransportError
		unsupported  *fare.UnsupportedCategoryError
	)

	switch {
	case errors.As(err, &invalidInput):
		c.JSON(http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, envelope{Success: false, Error: err.Error()})
	case errors.As(err, &transport):
		c.JSON(http.StatusBadGateway, envelope{Success: false, Error: err.Error()})
	case errors.As(err, &unsupported):
		c.JSON(http.StatusInternalServerError, envelope{Success: false, Error: err.Error()})
	case errors.Is(err, directory.ErrListingNotFound):
		c.JSON(http.StatusNotFound, envelope{Success: false, Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, envelope{Success: false, Error: "internal error"})
	}
}

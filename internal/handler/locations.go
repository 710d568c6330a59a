package handler

import (
	"context"
	"errors"
	"net/http"

	"clinic-harvester/internal/models"
	"clinic-harvester/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles text and postcode lookups
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection
type LocationService interface {
	Search(context.Context, string) ([]models.Location, error)
	ByPostcode(context.Context, string) ([]models.Location, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// Search handles GET /locations requests
func (h *LocationHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	locations, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// ByPostcode handles GET /locations/postcode/:postcode requests
func (h *LocationHandler) ByPostcode(c *gin.Context) {
	postcode := c.Param("postcode")

	locations, err := h.service.ByPostcode(c.Request.Context(), postcode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPostcode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UK postcode"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if len(locations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no locations found for postcode"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

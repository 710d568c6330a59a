package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"clinic-harvester/internal/models"
	"clinic-harvester/internal/service"

	"github.com/gin-gonic/gin"
)

// NearestHandler handles nearest-location requests
type NearestHandler struct {
	service NearestService
}

// NearestService interface for dependency injection
type NearestService interface {
	Nearest(context.Context, float64, float64) (*models.Location, error)
}

// NewNearestHandler creates a new nearest handler
func NewNearestHandler(svc NearestService) *NearestHandler {
	return &NearestHandler{service: svc}
}

// Nearest handles GET /nearest requests
func (h *NearestHandler) Nearest(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	location, err := h.service.Nearest(c.Request.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no clinic found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, location)
}

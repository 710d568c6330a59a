package service

import (
	"context"
	"errors"
	"fmt"

	"clinic-harvester/internal/models"
)

// NearestRadiusMeters bounds nearest-location lookups.
const NearestRadiusMeters = 10000

// Validation errors surfaced to the API as bad requests.
var (
	ErrInvalidCoordinates = errors.New("service: invalid coordinates")
	ErrInvalidPostcode    = errors.New("service: invalid postcode")
)

// NearestService finds the harvested location closest to a point
type NearestService struct {
	repo NearestRepository
}

// NearestRepository interface for dependency injection
type NearestRepository interface {
	FindNearestLocation(ctx context.Context, lat, lon, maxMeters float64) (*models.Location, error)
}

// NewNearestService creates a new nearest service
func NewNearestService(repo NearestRepository) *NearestService {
	return &NearestService{repo: repo}
}

// Nearest returns the closest location within NearestRadiusMeters, or nil when none is
func (s *NearestService) Nearest(ctx context.Context, lat, lon float64) (*models.Location, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude %f", ErrInvalidCoordinates, lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: longitude %f", ErrInvalidCoordinates, lon)
	}

	location, err := s.repo.FindNearestLocation(ctx, lat, lon, NearestRadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest location: %w", err)
	}

	return location, nil
}

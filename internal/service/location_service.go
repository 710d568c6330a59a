package service

import (
	"context"
	"fmt"
	"strings"

	"clinic-harvester/internal/models"
)

// LocationService contains the lookup logic over harvested locations
type LocationService struct {
	repo LocationRepository
}

// LocationRepository interface for dependency injection
type LocationRepository interface {
	SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error)
	FindByPostcode(ctx context.Context, postcode string) ([]models.Location, error)
}

// NewLocationService creates a new location service
func NewLocationService(repo LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// Search finds locations whose name, address or postcode contain query
func (s *LocationService) Search(ctx context.Context, query string) ([]models.Location, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("service: query cannot be empty")
	}

	locations, err := s.repo.SearchLocationsByText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search locations: %w", err)
	}

	return locations, nil
}

// ByPostcode finds locations registered under a UK postcode
func (s *LocationService) ByPostcode(ctx context.Context, postcode string) ([]models.Location, error) {
	if ExtractPostcode(postcode) == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPostcode, postcode)
	}

	locations, err := s.repo.FindByPostcode(ctx, postcode)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find postcode: %w", err)
	}

	return locations, nil
}

package service

import (
	"context"
	"testing"

	"clinic-harvester/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNearestRepository is a mock implementation of the NearestRepository interface
type MockNearestRepository struct {
	mock.Mock
}

func (m *MockNearestRepository) FindNearestLocation(ctx context.Context, lat, lon, maxMeters float64) (*models.Location, error) {
	args := m.Called(ctx, lat, lon, maxMeters)
	return args.Get(0).(*models.Location), args.Error(1)
}

func TestNearestService_Nearest(t *testing.T) {
	clinic := &models.Location{SourceIDs: "69740ebe049c37d8", Name: "Clinic One", Latitude: "51.5", Longitude: "-0.1"}

	tests := []struct {
		name         string
		lat          float64
		lon          float64
		callsRepo    bool
		mockLocation *models.Location
		mockError    error
		expected     *models.Location
		expectError  error
	}{
		{
			name:        "latitude out of range",
			lat:         91,
			lon:         0,
			expectError: ErrInvalidCoordinates,
		},
		{
			name:        "longitude out of range",
			lat:         51.5,
			lon:         -181,
			expectError: ErrInvalidCoordinates,
		},
		{
			name:         "location found",
			lat:          51.5,
			lon:          -0.1,
			callsRepo:    true,
			mockLocation: clinic,
			expected:     clinic,
		},
		{
			name:         "nothing nearby",
			lat:          57.48,
			lon:          -4.22,
			callsRepo:    true,
			mockLocation: nil,
			expected:     nil,
		},
		{
			name:         "repository error",
			lat:          51.5,
			lon:          -0.1,
			callsRepo:    true,
			mockLocation: nil,
			mockError:    assert.AnError,
			expectError:  assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockNearestRepository)
			service := NewNearestService(mockRepo)

			if tt.callsRepo {
				mockRepo.On("FindNearestLocation", mock.Anything, tt.lat, tt.lon, float64(NearestRadiusMeters)).
					Return(tt.mockLocation, tt.mockError)
			}

			result, err := service.Nearest(context.Background(), tt.lat, tt.lon)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			if tt.callsRepo {
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-harvester/internal/models"
	"clinic-harvester/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLocationService is a mock implementation of the LocationService interface
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Search(ctx context.Context, query string) ([]models.Location, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.Location), args.Error(1)
}

func (m *MockLocationService) ByPostcode(ctx context.Context, postcode string) ([]models.Location, error) {
	args := m.Called(ctx, postcode)
	return args.Get(0).([]models.Location), args.Error(1)
}

var clinicOne = models.Location{
	Source:        "alma",
	SourceIDs:     "69740ebe049c37d8",
	Name:          "Clinic One",
	Postcode:      "SW1A 1AA",
	StreetAddress: "1 High St, London SW1A 1AA",
	Latitude:      "51.5",
	Longitude:     "-0.1",
}

const clinicOneJSON = `{"source":"alma","source_ids":"69740ebe049c37d8","name":"Clinic One","postcode":"SW1A 1AA","streetaddress":"1 High St, London SW1A 1AA","loc_lat":"51.5","loc_long":"-0.1","website":"","phone":""}`

func TestLocationHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		mockLocations  []models.Location
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing query parameter",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required query parameter 'q'"}`,
		},
		{
			name:           "successful search with results",
			query:          "clinic",
			mockLocations:  []models.Location{clinicOne},
			expectedStatus: http.StatusOK,
			expectedBody:   "[" + clinicOneJSON + "]",
		},
		{
			name:           "successful search with no results",
			query:          "nonexistent",
			mockLocations:  []models.Location{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "service error",
			query:          "clinic",
			mockLocations:  nil,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			handler := NewLocationHandler(mockSvc)

			if tt.query != "" {
				mockSvc.On("Search", mock.Anything, tt.query).Return(tt.mockLocations, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/locations", nil)
			if tt.query != "" {
				q := req.URL.Query()
				q.Add("q", tt.query)
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Search(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			if tt.query != "" {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}

func TestLocationHandler_ByPostcode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		postcode       string
		mockLocations  []models.Location
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "found",
			postcode:       "SW1A1AA",
			mockLocations:  []models.Location{clinicOne},
			expectedStatus: http.StatusOK,
			expectedBody:   "[" + clinicOneJSON + "]",
		},
		{
			name:           "not found",
			postcode:       "B11AA",
			mockLocations:  []models.Location{},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no locations found for postcode"}`,
		},
		{
			name:           "invalid postcode",
			postcode:       "dubai",
			mockLocations:  nil,
			mockError:      fmt.Errorf("%w: %q", service.ErrInvalidPostcode, "dubai"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid UK postcode"}`,
		},
		{
			name:           "service error",
			postcode:       "B11AA",
			mockLocations:  nil,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			mockSvc.On("ByPostcode", mock.Anything, tt.postcode).Return(tt.mockLocations, tt.mockError)

			r := gin.New()
			r.GET("/locations/postcode/:postcode", NewLocationHandler(mockSvc).ByPostcode)

			req := httptest.NewRequest(http.MethodGet, "/locations/postcode/"+tt.postcode, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

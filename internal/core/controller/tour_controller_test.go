package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tourbook/internal/core/dto"
	"tourbook/pkg/apperrors"
	"tourbook/pkg/responder"
)

// MockTourService implements TourService
type MockTourService struct {
	mock.Mock
}

func (m *MockTourService) GetAll(ctx context.Context) ([]dto.TourResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TourResponse), args.Error(1)
}

func (m *MockTourService) GetByID(ctx context.Context, id int) (*dto.TourResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TourResponse), args.Error(1)
}

func (m *MockTourService) Create(ctx context.Context, req dto.CreateTourRequest) (dto.TourResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.TourResponse), args.Error(1)
}

func (m *MockTourService) Update(ctx context.Context, id int, req dto.UpdateTourRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockTourService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTourService) Search(ctx context.Context, term string) ([]dto.TourResponse, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TourResponse), args.Error(1)
}

func (m *MockTourService) GetByPlace(ctx context.Context, place string) ([]dto.TourResponse, error) {
	args := m.Called(ctx, place)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TourResponse), args.Error(1)
}

func newTourTestRouter(svc TourService) http.Handler {
	c := NewTourController(svc, responder.NewJSONResponder())
	r := chi.NewRouter()
	r.Get("/api/tours", c.ListTours)
	r.Get("/api/tours/search", c.SearchTours)
	r.Get("/api/tours/{id}", c.GetTour)
	r.Post("/api/tours", c.CreateTour)
	r.Put("/api/tours/{id}", c.UpdateTour)
	r.Delete("/api/tours/{id}", c.DeleteTour)
	return r
}

func TestTourController_ListTours(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	svc.On("GetAll", mock.Anything).Return([]dto.TourResponse{
		{ID: 1, Name: "Alps Trek"},
		{ID: 2, Name: "Lake Tour"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tours", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var tours []dto.TourResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tours))
	assert.Len(t, tours, 2)
	svc.AssertExpectations(t)
}

func TestTourController_ListTours_ByPlace(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	svc.On("GetByPlace", mock.Anything, "Switzerland").Return([]dto.TourResponse{
		{ID: 1, Name: "Alps Trek", Place: "Switzerland"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tours?place=Switzerland", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertNotCalled(t, "GetAll", mock.Anything)
	svc.AssertExpectations(t)
}

func TestTourController_GetTour_NotFound(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	svc.On("GetByID", mock.Anything, 999).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tours/999", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	svc.AssertExpectations(t)
}

func TestTourController_GetTour_InvalidID(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/tours/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTourController_CreateTour(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	svc.On("Create", mock.Anything, mock.Anything).Return(dto.TourResponse{ID: 42, Name: "Alps Trek"}, nil)

	body, _ := json.Marshal(dto.CreateTourRequest{Name: "Alps Trek", Place: "Switzerland", Days: 5})
	req := httptest.NewRequest(http.MethodPost, "/api/tours", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created dto.TourResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, 42, created.ID)
	svc.AssertExpectations(t)
}

// Typed service errors carry their own status code to the response.
func TestTourController_UpdateTour_NotFound(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	svc.On("Update", mock.Anything, 999, mock.Anything).Return(apperrors.NotFoundWithID("Tour", 999))

	body, _ := json.Marshal(dto.UpdateTourRequest{Name: "Ghost"})
	req := httptest.NewRequest(http.MethodPut, "/api/tours/999", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var errResp responder.ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error, "999")
	svc.AssertExpectations(t)
}

func TestTourController_DeleteTour(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	svc.On("Delete", mock.Anything, 1).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/tours/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	svc.AssertExpectations(t)
}

func TestTourController_DeleteTour_ServiceError(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	svc.On("Delete", mock.Anything, 1).Return(errors.New("database connection failed"))

	req := httptest.NewRequest(http.MethodDelete, "/api/tours/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	svc.AssertExpectations(t)
}

func TestTourController_SearchTours_MissingQuery(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/tours/search", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestTourController_SearchTours(t *testing.T) {
	svc := new(MockTourService)
	router := newTourTestRouter(svc)

	svc.On("Search", mock.Anything, "Europe").Return([]dto.TourResponse{
		{ID: 1, Name: "Europe Adventure"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tours/search?q=Europe", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

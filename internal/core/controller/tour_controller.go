package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tourbook/internal/core/dto"
	"tourbook/pkg/responder"
)

type TourService interface {
	GetAll(ctx context.Context) ([]dto.TourResponse, error)
	GetByID(ctx context.Context, id int) (*dto.TourResponse, error)
	Create(ctx context.Context, req dto.CreateTourRequest) (dto.TourResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateTourRequest) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, term string) ([]dto.TourResponse, error)
	GetByPlace(ctx context.Context, place string) ([]dto.TourResponse, error)
}

type TourController struct {
	service   TourService
	responder responder.Responder
}

func NewTourController(service TourService, rsp responder.Responder) *TourController {
	return &TourController{service: service, responder: rsp}
}

// ListTours handles GET /api/tours. An optional place query filters by
// exact place.
func (c *TourController) ListTours(w http.ResponseWriter, r *http.Request) {
	var (
		tours []dto.TourResponse
		err   error
	)
	if place := r.URL.Query().Get("place"); place != "" {
		tours, err = c.service.GetByPlace(r.Context(), place)
	} else {
		tours, err = c.service.GetAll(r.Context())
	}
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, tours)
}

func (c *TourController) GetTour(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid tour ID")
		return
	}

	tour, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	if tour == nil {
		c.responder.Error(w, http.StatusNotFound, "tour not found")
		return
	}
	c.responder.Respond(w, http.StatusOK, tour)
}

func (c *TourController) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTourRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid request format")
		return
	}

	tour, err := c.service.Create(r.Context(), req)
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, tour)
}

func (c *TourController) UpdateTour(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid tour ID")
		return
	}

	var req dto.UpdateTourRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := c.service.Update(r.Context(), id, req); err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, nil)
}

func (c *TourController) DeleteTour(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid tour ID")
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}

// SearchTours handles GET /api/tours/search?q=term.
func (c *TourController) SearchTours(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		c.responder.Error(w, http.StatusBadRequest, "q parameter is required")
		return
	}

	tours, err := c.service.Search(r.Context(), term)
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, tours)
}

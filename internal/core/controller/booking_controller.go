package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tourbook/internal/core/dto"
	"tourbook/pkg/responder"
)

type BookingService interface {
	GetAll(ctx context.Context) ([]dto.BookingResponse, error)
	GetByID(ctx context.Context, id int) (*dto.BookingResponse, error)
	GetByUserID(ctx context.Context, userID int) ([]dto.BookingResponse, error)
	GetByTourID(ctx context.Context, tourID int) ([]dto.BookingResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateBookingRequest) error
	Delete(ctx context.Context, id int) error
}

type BookingController struct {
	service   BookingService
	responder responder.Responder
}

func NewBookingController(service BookingService, rsp responder.Responder) *BookingController {
	return &BookingController{service: service, responder: rsp}
}

// ListBookings handles GET /api/bookings with optional user_id or tour_id
// query filters.
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	var (
		bookings []dto.BookingResponse
		err      error
	)
	switch {
	case r.URL.Query().Get("user_id") != "":
		var userID int
		userID, err = strconv.Atoi(r.URL.Query().Get("user_id"))
		if err != nil {
			c.responder.Error(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		bookings, err = c.service.GetByUserID(r.Context(), userID)
	case r.URL.Query().Get("tour_id") != "":
		var tourID int
		tourID, err = strconv.Atoi(r.URL.Query().Get("tour_id"))
		if err != nil {
			c.responder.Error(w, http.StatusBadRequest, "invalid tour_id")
			return
		}
		bookings, err = c.service.GetByTourID(r.Context(), tourID)
	default:
		bookings, err = c.service.GetAll(r.Context())
	}
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, bookings)
}

func (c *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid booking ID")
		return
	}

	booking, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	if booking == nil {
		c.responder.Error(w, http.StatusNotFound, "booking not found")
		return
	}
	c.responder.Respond(w, http.StatusOK, booking)
}

func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid request format")
		return
	}

	booking, err := c.service.Create(r.Context(), req)
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, booking)
}

func (c *BookingController) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid booking ID")
		return
	}

	var req dto.UpdateBookingRequest
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

func (c *BookingController) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid booking ID")
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}

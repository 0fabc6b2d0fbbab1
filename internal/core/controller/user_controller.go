package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tourbook/internal/core/dto"
	"tourbook/pkg/responder"
)

type UserService interface {
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id int) (*dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateUserRequest) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, term string) ([]dto.UserResponse, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type UserController struct {
	service   UserService
	responder responder.Responder
}

func NewUserController(service UserService, rsp responder.Responder) *UserController {
	return &UserController{service: service, responder: rsp}
}

func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.GetAll(r.Context())
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, users)
}

func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	if user == nil {
		c.responder.Error(w, http.StatusNotFound, "user not found")
		return
	}
	c.responder.Respond(w, http.StatusOK, user)
}

func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid request format")
		return
	}

	user, err := c.service.Create(r.Context(), req)
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, user)
}

func (c *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req dto.UpdateUserRequest
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

func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}

func (c *UserController) SearchUsers(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		c.responder.Error(w, http.StatusBadRequest, "q parameter is required")
		return
	}

	users, err := c.service.Search(r.Context(), term)
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, users)
}

// EmailExists handles GET /api/users/exists?email=...
func (c *UserController) EmailExists(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		c.responder.Error(w, http.StatusBadRequest, "email parameter is required")
		return
	}

	exists, err := c.service.EmailExists(r.Context(), email)
	if err != nil {
		respondServiceError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, map[string]bool{"exists": exists})
}

package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tourbook/internal/core/dto"
	"tourbook/internal/core/service"
	"tourbook/pkg/apperrors"
	"tourbook/pkg/responder"
)

// LoginRequest carries the credentials for /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued JWT and the authenticated user.
type LoginResponse struct {
	Token string               `json:"token"`
	User  dto.UserAuthResponse `json:"user"`
}

// Auth issues and verifies JWTs backed by the user service.
type Auth struct {
	tokenAuth *jwtauth.JWTAuth
	users     *service.UserService
	responder responder.Responder
	log       *zap.Logger
}

func NewAuth(secret string, users *service.UserService, rsp responder.Responder, log *zap.Logger) *Auth {
	return &Auth{
		tokenAuth: jwtauth.New("HS256", []byte(secret), nil),
		users:     users,
		responder: rsp,
		log:       log,
	}
}

// Middleware rejects requests without a valid bearer token.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader != "" && !strings.HasPrefix(authHeader, "Bearer ") {
			r.Header.Set("Authorization", "Bearer "+authHeader)
		}

		token, err := jwtauth.VerifyRequest(a.tokenAuth, r, jwtauth.TokenFromHeader)
		if err != nil || token == nil {
			a.responder.Error(w, http.StatusForbidden, "forbidden")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RegisterHandler creates a user account via the user service, so the
// duplicate-email rule and password hashing apply here as everywhere else.
func (a *Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := a.responder.Decode(r, &req); err != nil {
		a.responder.Error(w, http.StatusBadRequest, "invalid request format")
		return
	}

	user, err := a.users.Create(r.Context(), req)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			a.responder.Error(w, appErr.StatusCode(), appErr.Message)
			return
		}
		a.responder.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.responder.Respond(w, http.StatusCreated, user)
}

// LoginHandler authenticates and issues a token. Unknown email and wrong
// password produce the same 401.
func (a *Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := a.responder.Decode(r, &req); err != nil {
		a.responder.Error(w, http.StatusBadRequest, "invalid request format")
		return
	}

	user, err := a.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		a.responder.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil {
		a.responder.Error(w, http.StatusUnauthorized, "authentication failed")
		return
	}

	_, tokenString, err := a.tokenAuth.Encode(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	if err != nil {
		a.log.Error("failed to encode token", zap.Error(err))
		a.responder.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.responder.Respond(w, http.StatusOK, LoginResponse{Token: tokenString, User: *user})
}

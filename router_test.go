package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"tourbook/internal/core/controller"
	"tourbook/internal/core/dto"
	"tourbook/internal/core/entity"
	"tourbook/internal/core/repository"
	"tourbook/internal/core/service"
	"tourbook/pkg/responder"
)

// memTourRepo keeps tours in a map with the same soft-delete reads the
// real store has: inactive rows are invisible to every query.
type memTourRepo struct {
	tours  map[int]entity.Tour
	nextID int
}

func newMemTourRepo() *memTourRepo {
	return &memTourRepo{tours: make(map[int]entity.Tour), nextID: 1}
}

func (m *memTourRepo) GetAll(ctx context.Context) ([]entity.Tour, error) {
	out := make([]entity.Tour, 0, len(m.tours))
	for _, t := range m.tours {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTourRepo) GetByID(ctx context.Context, id int) (entity.Tour, error) {
	t, ok := m.tours[id]
	if !ok || !t.IsActive {
		return entity.Tour{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *memTourRepo) Add(ctx context.Context, tour entity.Tour) (entity.Tour, error) {
	tour.ID = m.nextID
	m.tours[m.nextID] = tour
	m.nextID++
	return tour, nil
}

func (m *memTourRepo) Update(ctx context.Context, tour entity.Tour) error {
	if _, ok := m.tours[tour.ID]; !ok {
		return repository.ErrNotFound
	}
	m.tours[tour.ID] = tour
	return nil
}

func (m *memTourRepo) Delete(ctx context.Context, id int) error {
	t, ok := m.tours[id]
	if !ok {
		return nil
	}
	t.IsActive = false
	m.tours[id] = t
	return nil
}

func (m *memTourRepo) Exists(ctx context.Context, id int) (bool, error) {
	t, ok := m.tours[id]
	return ok && t.IsActive, nil
}

func (m *memTourRepo) Search(ctx context.Context, term string) ([]entity.Tour, error) {
	term = strings.ToLower(term)
	var out []entity.Tour
	for _, t := range m.tours {
		if !t.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(t.Name), term) ||
			strings.Contains(strings.ToLower(t.Place), term) ||
			strings.Contains(strings.ToLower(t.Locations), term) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTourRepo) GetByPlace(ctx context.Context, place string) ([]entity.Tour, error) {
	var out []entity.Tour
	for _, t := range m.tours {
		if t.IsActive && t.Place == place {
			out = append(out, t)
		}
	}
	return out, nil
}

type memUserRepo struct {
	users  map[int]entity.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int]entity.User), nextID: 1}
}

func (m *memUserRepo) GetAll(ctx context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id int) (entity.User, error) {
	u, ok := m.users[id]
	if !ok || !u.IsActive {
		return entity.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	for _, u := range m.users {
		if u.IsActive && u.Email == email {
			return u, nil
		}
	}
	return entity.User{}, repository.ErrNotFound
}

func (m *memUserRepo) Add(ctx context.Context, user entity.User) (entity.User, error) {
	user.ID = m.nextID
	m.users[m.nextID] = user
	m.nextID++
	return user, nil
}

func (m *memUserRepo) Update(ctx context.Context, user entity.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id int) error {
	u, ok := m.users[id]
	if !ok {
		return nil
	}
	u.IsActive = false
	m.users[id] = u
	return nil
}

func (m *memUserRepo) Exists(ctx context.Context, id int) (bool, error) {
	u, ok := m.users[id]
	return ok && u.IsActive, nil
}

func (m *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.IsActive && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) Search(ctx context.Context, term string) ([]entity.User, error) {
	term = strings.ToLower(term)
	var out []entity.User
	for _, u := range m.users {
		if !u.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(u.Email), term) ||
			strings.Contains(strings.ToLower(u.FirstName), term) ||
			strings.Contains(strings.ToLower(u.LastName), term) {
			out = append(out, u)
		}
	}
	return out, nil
}

type memBookingRepo struct {
	bookings map[int]entity.Booking
	nextID   int
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[int]entity.Booking), nextID: 1}
}

func (m *memBookingRepo) GetAll(ctx context.Context) ([]entity.Booking, error) {
	out := make([]entity.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) GetByID(ctx context.Context, id int) (entity.Booking, error) {
	b, ok := m.bookings[id]
	if !ok || !b.IsActive {
		return entity.Booking{}, repository.ErrNotFound
	}
	return b, nil
}

func (m *memBookingRepo) GetByUserID(ctx context.Context, userID int) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range m.bookings {
		if b.IsActive && b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) GetByTourID(ctx context.Context, tourID int) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range m.bookings {
		if b.IsActive && b.TourID == tourID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) Add(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	booking.ID = m.nextID
	m.bookings[m.nextID] = booking
	m.nextID++
	return booking, nil
}

func (m *memBookingRepo) Update(ctx context.Context, booking entity.Booking) error {
	if _, ok := m.bookings[booking.ID]; !ok {
		return repository.ErrNotFound
	}
	m.bookings[booking.ID] = booking
	return nil
}

func (m *memBookingRepo) Delete(ctx context.Context, id int) error {
	b, ok := m.bookings[id]
	if !ok {
		return nil
	}
	b.IsActive = false
	m.bookings[id] = b
	return nil
}

func (m *memBookingRepo) Exists(ctx context.Context, id int) (bool, error) {
	b, ok := m.bookings[id]
	return ok && b.IsActive, nil
}

func setupTestServer() http.Handler {
	log := zap.NewNop()
	rsp := responder.NewJSONResponder()

	tourService := service.NewTourService(newMemTourRepo(), log)
	userService := service.NewUserService(newMemUserRepo(), log)
	bookingService := service.NewBookingService(newMemBookingRepo(), log)

	auth := NewAuth(testJWTSecret, userService, rsp, log)
	tours := controller.NewTourController(tourService, rsp)
	users := controller.NewUserController(userService, rsp)
	bookings := controller.NewBookingController(bookingService, rsp)

	return setupRouter(auth, tours, users, bookings)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		assert.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func registerAndLogin(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	rr := doJSON(t, router, http.MethodPost, "/api/register", "", dto.CreateUserRequest{
		Email:     email,
		Password:  "securepassword123",
		FirstName: "Test",
		LastName:  "User",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/login", "", LoginRequest{
		Email:    email,
		Password: "securepassword123",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var login LoginResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)
	return login.Token
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := setupTestServer()

	for _, path := range []string{"/api/tours", "/api/users", "/api/bookings"} {
		rr := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusForbidden, rr.Code, path)
	}
}

func TestRouter_TourLifecycle(t *testing.T) {
	router := setupTestServer()
	token := registerAndLogin(t, router, "admin@example.com")

	// Create
	rr := doJSON(t, router, http.MethodPost, "/api/tours", token, dto.CreateTourRequest{
		Name:      "Alps Trek",
		Place:     "Switzerland",
		Days:      5,
		Price:     999.00,
		Locations: "Zermatt, Interlaken",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created dto.TourResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)

	tourPath := fmt.Sprintf("/api/tours/%d", created.ID)

	// Read back
	rr = doJSON(t, router, http.MethodGet, tourPath, token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Update
	rr = doJSON(t, router, http.MethodPut, tourPath, token, dto.UpdateTourRequest{
		Name:  "Alps Grand Trek",
		Place: "Switzerland",
		Days:  7,
		Price: 1299.00,
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	// Search finds the renamed tour
	rr = doJSON(t, router, http.MethodGet, "/api/tours/search?q=grand", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	var found []dto.TourResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &found))
	assert.Len(t, found, 1)

	// Soft delete, then the tour is gone from every read path
	rr = doJSON(t, router, http.MethodDelete, tourPath, token, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, http.MethodGet, tourPath, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/tours", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	var remaining []dto.TourResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &remaining))
	assert.Empty(t, remaining)

	// Deleting again is a 404, not a second delete
	rr = doJSON(t, router, http.MethodDelete, tourPath, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_RegisterDuplicateEmail(t *testing.T) {
	router := setupTestServer()
	registerAndLogin(t, router, "taken@example.com")

	rr := doJSON(t, router, http.MethodPost, "/api/register", "", dto.CreateUserRequest{
		Email:    "taken@example.com",
		Password: "anotherpassword",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestRouter_BookingLifecycle(t *testing.T) {
	router := setupTestServer()
	token := registerAndLogin(t, router, "booker@example.com")

	rr := doJSON(t, router, http.MethodPost, "/api/tours", token, dto.CreateTourRequest{
		Name:  "Alps Trek",
		Place: "Switzerland",
		Days:  5,
		Price: 999.00,
	})
	assert.Equal(t, http.StatusCreated, rr.Code)
	var tour dto.TourResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tour))

	// Status in the request is ignored: a new booking is always Pending.
	rr = doJSON(t, router, http.MethodPost, "/api/bookings", token, map[string]interface{}{
		"user_id":          1,
		"tour_id":          tour.ID,
		"booking_date":     time.Now().UTC().AddDate(0, 1, 0).Format(time.RFC3339),
		"number_of_people": 2,
		"total_price":      1998.00,
		"status":           "Confirmed",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var booking dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &booking))
	assert.Equal(t, entity.StatusPending, booking.Status)

	// An update may move it to Confirmed
	rr = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", booking.ID), token, dto.UpdateBookingRequest{
		BookingDate:    booking.BookingDate,
		NumberOfPeople: 2,
		TotalPrice:     1998.00,
		Status:         entity.StatusConfirmed,
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/bookings?tour_id=%d", tour.ID), token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	var byTour []dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &byTour))
	assert.Len(t, byTour, 1)
	assert.Equal(t, entity.StatusConfirmed, byTour[0].Status)
}

func TestRouter_EmailExists(t *testing.T) {
	router := setupTestServer()
	token := registerAndLogin(t, router, "known@example.com")

	rr := doJSON(t, router, http.MethodGet, "/api/users/exists?email=known@example.com", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var result map[string]bool
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result["exists"])

	rr = doJSON(t, router, http.MethodGet, "/api/users/exists?email=unknown@example.com", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result["exists"])
}

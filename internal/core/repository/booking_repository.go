package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"tourbook/internal/core/entity"
	"tourbook/internal/infrastructure/db/adapter"
)

var bookingColumns = []string{
	"b.id", "b.user_id", "b.tour_id", "b.booking_date", "b.number_of_people",
	"b.total_price", "b.status", "b.created_date", "b.modified_date",
	"b.is_active", "b.created_by", "b.modified_by",
	"u.email AS user_email", "t.name AS tour_name",
}

type BookingRepository interface {
	GetAll(ctx context.Context) ([]entity.Booking, error)
	GetByID(ctx context.Context, id int) (entity.Booking, error)
	GetByUserID(ctx context.Context, userID int) ([]entity.Booking, error)
	GetByTourID(ctx context.Context, tourID int) ([]entity.Booking, error)
	Add(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	Update(ctx context.Context, booking entity.Booking) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

type bookingRepository struct {
	adapter *adapter.SQLAdapter
	log     *zap.Logger
}

func NewBookingRepository(a *adapter.SQLAdapter, log *zap.Logger) BookingRepository {
	return &bookingRepository{adapter: a, log: log}
}

// bookingSelect joins the owning user and tour so every read carries the
// denormalized email and tour name.
func bookingSelect() sq.SelectBuilder {
	return adapter.Builder.
		Select(bookingColumns...).
		From("bookings b").
		Join("users u ON u.id = b.user_id").
		Join("tours t ON t.id = b.tour_id")
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]entity.Booking, error) {
	qb := bookingSelect().
		Where(sq.Eq{"b.is_active": true}).
		OrderBy("b.created_date DESC")

	bookings := []entity.Booking{}
	if err := r.adapter.Select(ctx, &bookings, qb, "bookings.get_all"); err != nil {
		r.log.Error("failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int) (entity.Booking, error) {
	qb := bookingSelect().
		Where(sq.Eq{"b.id": id, "b.is_active": true})

	var booking entity.Booking
	if err := r.adapter.Get(ctx, &booking, qb, "bookings.get_by_id"); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Booking{}, ErrNotFound
		}
		r.log.Error("failed to get booking", zap.Int("booking_id", id), zap.Error(err))
		return entity.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID int) ([]entity.Booking, error) {
	qb := bookingSelect().
		Where(sq.Eq{"b.user_id": userID, "b.is_active": true}).
		OrderBy("b.created_date DESC")

	bookings := []entity.Booking{}
	if err := r.adapter.Select(ctx, &bookings, qb, "bookings.get_by_user_id"); err != nil {
		r.log.Error("failed to get bookings for user", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get bookings for user: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) GetByTourID(ctx context.Context, tourID int) ([]entity.Booking, error) {
	qb := bookingSelect().
		Where(sq.Eq{"b.tour_id": tourID, "b.is_active": true}).
		OrderBy("b.created_date DESC")

	bookings := []entity.Booking{}
	if err := r.adapter.Select(ctx, &bookings, qb, "bookings.get_by_tour_id"); err != nil {
		r.log.Error("failed to get bookings for tour", zap.Int("tour_id", tourID), zap.Error(err))
		return nil, fmt.Errorf("failed to get bookings for tour: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) Add(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	qb := adapter.Builder.
		Insert("bookings").
		Columns("user_id", "tour_id", "booking_date", "number_of_people",
			"total_price", "status", "created_date", "is_active", "created_by").
		Values(booking.UserID, booking.TourID, booking.BookingDate,
			booking.NumberOfPeople, booking.TotalPrice, booking.Status,
			booking.CreatedDate, booking.IsActive, booking.CreatedBy).
		Suffix("RETURNING id")

	var id int
	if err := r.adapter.Get(ctx, &id, qb, "bookings.add"); err != nil {
		r.log.Error("failed to add booking",
			zap.Int("user_id", booking.UserID),
			zap.Int("tour_id", booking.TourID),
			zap.Error(err))
		return entity.Booking{}, fmt.Errorf("failed to add booking: %w", err)
	}
	booking.ID = id
	return booking, nil
}

// Update never moves a booking to another user or tour.
func (r *bookingRepository) Update(ctx context.Context, booking entity.Booking) error {
	qb := adapter.Builder.
		Update("bookings").
		Set("booking_date", booking.BookingDate).
		Set("number_of_people", booking.NumberOfPeople).
		Set("total_price", booking.TotalPrice).
		Set("status", booking.Status).
		Set("modified_date", booking.ModifiedDate).
		Set("modified_by", booking.ModifiedBy).
		Where(sq.Eq{"id": booking.ID})

	if _, err := r.adapter.Exec(ctx, qb, "bookings.update"); err != nil {
		r.log.Error("failed to update booking", zap.Int("booking_id", booking.ID), zap.Error(err))
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int) error {
	qb := adapter.Builder.
		Update("bookings").
		Set("is_active", false).
		Set("modified_date", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if _, err := r.adapter.Exec(ctx, qb, "bookings.delete"); err != nil {
		r.log.Error("failed to delete booking", zap.Int("booking_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Exists(ctx context.Context, id int) (bool, error) {
	qb := adapter.Builder.
		Select("1").
		From("bookings").
		Where(sq.Eq{"id": id, "is_active": true})

	var one int
	if err := r.adapter.Get(ctx, &one, qb, "bookings.exists"); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		r.log.Error("failed to check booking existence", zap.Int("booking_id", id), zap.Error(err))
		return false, fmt.Errorf("failed to check booking existence: %w", err)
	}
	return true, nil
}

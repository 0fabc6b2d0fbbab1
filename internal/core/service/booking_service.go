package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tourbook/internal/core/dto"
	"tourbook/internal/core/mapper"
	"tourbook/internal/core/repository"
	"tourbook/pkg/apperrors"
)

// BookingService implements booking management. Status transitions are not
// enforced here: the status column accepts whatever the update carries,
// the recognized labels are convention only.
type BookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) *BookingService {
	return &BookingService{repo: repo, log: log}
}

func (s *BookingService) GetAll(ctx context.Context) ([]dto.BookingResponse, error) {
	s.log.Info("getting all bookings")
	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.BookingsToResponses(bookings), nil
}

func (s *BookingService) GetByID(ctx context.Context, id int) (*dto.BookingResponse, error) {
	s.log.Info("getting booking", zap.Int("booking_id", id))
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("booking not found", zap.Int("booking_id", id))
			return nil, nil
		}
		return nil, err
	}
	resp := mapper.BookingToResponse(booking)
	return &resp, nil
}

func (s *BookingService) GetByUserID(ctx context.Context, userID int) ([]dto.BookingResponse, error) {
	s.log.Info("getting bookings for user", zap.Int("user_id", userID))
	bookings, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapper.BookingsToResponses(bookings), nil
}

func (s *BookingService) GetByTourID(ctx context.Context, tourID int) ([]dto.BookingResponse, error) {
	s.log.Info("getting bookings for tour", zap.Int("tour_id", tourID))
	bookings, err := s.repo.GetByTourID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	return mapper.BookingsToResponses(bookings), nil
}

func (s *BookingService) Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
	s.log.Info("creating booking",
		zap.Int("user_id", req.UserID),
		zap.Int("tour_id", req.TourID))

	booking := mapper.BookingFromCreate(req, time.Now().UTC())
	created, err := s.repo.Add(ctx, booking)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	s.log.Info("booking created", zap.Int("booking_id", created.ID))
	return mapper.BookingToResponse(created), nil
}

func (s *BookingService) Update(ctx context.Context, id int, req dto.UpdateBookingRequest) error {
	s.log.Info("updating booking", zap.Int("booking_id", id))

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("booking not found for update", zap.Int("booking_id", id))
			return apperrors.NotFoundWithID("Booking", id)
		}
		return err
	}

	mapper.ApplyBookingUpdate(&booking, req, time.Now().UTC())
	if err := s.repo.Update(ctx, booking); err != nil {
		return err
	}

	s.log.Info("booking updated", zap.Int("booking_id", id))
	return nil
}

func (s *BookingService) Delete(ctx context.Context, id int) error {
	s.log.Info("deleting booking", zap.Int("booking_id", id))

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		s.log.Warn("booking not found for delete", zap.Int("booking_id", id))
		return apperrors.NotFoundWithID("Booking", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("booking deleted", zap.Int("booking_id", id))
	return nil
}

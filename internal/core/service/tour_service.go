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

// TourService implements the catalog business logic over the tour
// repository. Absence on read paths is a nil result, never an error;
// update and delete on a missing tour fail with a typed not-found error.
type TourService struct {
	repo repository.TourRepository
	log  *zap.Logger
}

func NewTourService(repo repository.TourRepository, log *zap.Logger) *TourService {
	return &TourService{repo: repo, log: log}
}

func (s *TourService) GetAll(ctx context.Context) ([]dto.TourResponse, error) {
	s.log.Info("getting all tours")
	tours, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToursToResponses(tours), nil
}

func (s *TourService) GetByID(ctx context.Context, id int) (*dto.TourResponse, error) {
	s.log.Info("getting tour", zap.Int("tour_id", id))
	tour, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("tour not found", zap.Int("tour_id", id))
			return nil, nil
		}
		return nil, err
	}
	resp := mapper.TourToResponse(tour)
	return &resp, nil
}

func (s *TourService) Create(ctx context.Context, req dto.CreateTourRequest) (dto.TourResponse, error) {
	s.log.Info("creating tour", zap.String("name", req.Name))

	tour := mapper.TourFromCreate(req, time.Now().UTC())
	created, err := s.repo.Add(ctx, tour)
	if err != nil {
		return dto.TourResponse{}, err
	}

	s.log.Info("tour created", zap.Int("tour_id", created.ID))
	return mapper.TourToResponse(created), nil
}

func (s *TourService) Update(ctx context.Context, id int, req dto.UpdateTourRequest) error {
	s.log.Info("updating tour", zap.Int("tour_id", id))

	tour, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("tour not found for update", zap.Int("tour_id", id))
			return apperrors.NotFoundWithID("Tour", id)
		}
		return err
	}

	mapper.ApplyTourUpdate(&tour, req, time.Now().UTC())
	if err := s.repo.Update(ctx, tour); err != nil {
		return err
	}

	s.log.Info("tour updated", zap.Int("tour_id", id))
	return nil
}

func (s *TourService) Delete(ctx context.Context, id int) error {
	s.log.Info("deleting tour", zap.Int("tour_id", id))

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		s.log.Warn("tour not found for delete", zap.Int("tour_id", id))
		return apperrors.NotFoundWithID("Tour", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("tour deleted", zap.Int("tour_id", id))
	return nil
}

func (s *TourService) Search(ctx context.Context, term string) ([]dto.TourResponse, error) {
	s.log.Info("searching tours", zap.String("term", term))
	tours, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return mapper.ToursToResponses(tours), nil
}

func (s *TourService) GetByPlace(ctx context.Context, place string) ([]dto.TourResponse, error) {
	s.log.Info("getting tours by place", zap.String("place", place))
	tours, err := s.repo.GetByPlace(ctx, place)
	if err != nil {
		return nil, err
	}
	return mapper.ToursToResponses(tours), nil
}

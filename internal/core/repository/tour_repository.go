// Package repository mediates all persistence access. Soft delete is a
// repository-level invariant: every read query carries the active-only
// predicate, deleted rows never leave this package.
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

var tourColumns = []string{
	"id", "name", "place", "days", "price", "locations", "description",
	"picture_path", "created_date", "modified_date", "is_active",
	"created_by", "modified_by",
}

type TourRepository interface {
	GetAll(ctx context.Context) ([]entity.Tour, error)
	GetByID(ctx context.Context, id int) (entity.Tour, error)
	Add(ctx context.Context, tour entity.Tour) (entity.Tour, error)
	Update(ctx context.Context, tour entity.Tour) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	Search(ctx context.Context, term string) ([]entity.Tour, error)
	GetByPlace(ctx context.Context, place string) ([]entity.Tour, error)
}

type tourRepository struct {
	adapter *adapter.SQLAdapter
	log     *zap.Logger
}

func NewTourRepository(a *adapter.SQLAdapter, log *zap.Logger) TourRepository {
	return &tourRepository{adapter: a, log: log}
}

func (r *tourRepository) GetAll(ctx context.Context) ([]entity.Tour, error) {
	qb := adapter.Builder.
		Select(tourColumns...).
		From("tours").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_date DESC")

	tours := []entity.Tour{}
	if err := r.adapter.Select(ctx, &tours, qb, "tours.get_all"); err != nil {
		r.log.Error("failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	return tours, nil
}

func (r *tourRepository) GetByID(ctx context.Context, id int) (entity.Tour, error) {
	qb := adapter.Builder.
		Select(tourColumns...).
		From("tours").
		Where(sq.Eq{"id": id, "is_active": true})

	var tour entity.Tour
	if err := r.adapter.Get(ctx, &tour, qb, "tours.get_by_id"); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Tour{}, ErrNotFound
		}
		r.log.Error("failed to get tour", zap.Int("tour_id", id), zap.Error(err))
		return entity.Tour{}, fmt.Errorf("failed to get tour: %w", err)
	}
	return tour, nil
}

func (r *tourRepository) Add(ctx context.Context, tour entity.Tour) (entity.Tour, error) {
	qb := adapter.Builder.
		Insert("tours").
		Columns("name", "place", "days", "price", "locations", "description",
			"picture_path", "created_date", "is_active", "created_by").
		Values(tour.Name, tour.Place, tour.Days, tour.Price, tour.Locations,
			tour.Description, tour.PicturePath, tour.CreatedDate, tour.IsActive,
			tour.CreatedBy).
		Suffix("RETURNING id")

	var id int
	if err := r.adapter.Get(ctx, &id, qb, "tours.add"); err != nil {
		r.log.Error("failed to add tour", zap.String("name", tour.Name), zap.Error(err))
		return entity.Tour{}, fmt.Errorf("failed to add tour: %w", err)
	}
	tour.ID = id
	return tour, nil
}

// Update assumes the caller has fetched the entity and applied its changes;
// it does not check existence or the active flag itself.
func (r *tourRepository) Update(ctx context.Context, tour entity.Tour) error {
	qb := adapter.Builder.
		Update("tours").
		Set("name", tour.Name).
		Set("place", tour.Place).
		Set("days", tour.Days).
		Set("price", tour.Price).
		Set("locations", tour.Locations).
		Set("description", tour.Description).
		Set("picture_path", tour.PicturePath).
		Set("modified_date", tour.ModifiedDate).
		Set("modified_by", tour.ModifiedBy).
		Where(sq.Eq{"id": tour.ID})

	if _, err := r.adapter.Exec(ctx, qb, "tours.update"); err != nil {
		r.log.Error("failed to update tour", zap.Int("tour_id", tour.ID), zap.Error(err))
		return fmt.Errorf("failed to update tour: %w", err)
	}
	return nil
}

// Delete flips is_active and stamps modified_date, irrespective of the
// current flag. A missing id is a no-op.
func (r *tourRepository) Delete(ctx context.Context, id int) error {
	qb := adapter.Builder.
		Update("tours").
		Set("is_active", false).
		Set("modified_date", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if _, err := r.adapter.Exec(ctx, qb, "tours.delete"); err != nil {
		r.log.Error("failed to delete tour", zap.Int("tour_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete tour: %w", err)
	}
	return nil
}

func (r *tourRepository) Exists(ctx context.Context, id int) (bool, error) {
	qb := adapter.Builder.
		Select("1").
		From("tours").
		Where(sq.Eq{"id": id, "is_active": true})

	var one int
	if err := r.adapter.Get(ctx, &one, qb, "tours.exists"); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		r.log.Error("failed to check tour existence", zap.Int("tour_id", id), zap.Error(err))
		return false, fmt.Errorf("failed to check tour existence: %w", err)
	}
	return true, nil
}

// Search matches the term as a case-insensitive substring of the tour
// name, place or locations.
func (r *tourRepository) Search(ctx context.Context, term string) ([]entity.Tour, error) {
	pattern := "%" + term + "%"
	qb := adapter.Builder.
		Select(tourColumns...).
		From("tours").
		Where(sq.Eq{"is_active": true}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"place": pattern},
			sq.ILike{"locations": pattern},
		}).
		OrderBy("created_date DESC")

	tours := []entity.Tour{}
	if err := r.adapter.Select(ctx, &tours, qb, "tours.search"); err != nil {
		r.log.Error("failed to search tours", zap.String("term", term), zap.Error(err))
		return nil, fmt.Errorf("failed to search tours: %w", err)
	}
	return tours, nil
}

func (r *tourRepository) GetByPlace(ctx context.Context, place string) ([]entity.Tour, error) {
	qb := adapter.Builder.
		Select(tourColumns...).
		From("tours").
		Where(sq.Eq{"is_active": true, "place": place}).
		OrderBy("created_date DESC")

	tours := []entity.Tour{}
	if err := r.adapter.Select(ctx, &tours, qb, "tours.get_by_place"); err != nil {
		r.log.Error("failed to get tours by place", zap.String("place", place), zap.Error(err))
		return nil, fmt.Errorf("failed to get tours by place: %w", err)
	}
	return tours, nil
}

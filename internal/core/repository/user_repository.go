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

var userColumns = []string{
	"id", "email", "password_hash", "first_name", "last_name", "phone_number",
	"created_date", "modified_date", "is_active", "created_by", "modified_by",
}

type UserRepository interface {
	GetAll(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int) (entity.User, error)
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	Add(ctx context.Context, user entity.User) (entity.User, error)
	Update(ctx context.Context, user entity.User) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Search(ctx context.Context, term string) ([]entity.User, error)
}

type userRepository struct {
	adapter *adapter.SQLAdapter
	log     *zap.Logger
}

func NewUserRepository(a *adapter.SQLAdapter, log *zap.Logger) UserRepository {
	return &userRepository{adapter: a, log: log}
}

func (r *userRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	qb := adapter.Builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_date DESC")

	users := []entity.User{}
	if err := r.adapter.Select(ctx, &users, qb, "users.get_all"); err != nil {
		r.log.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (entity.User, error) {
	qb := adapter.Builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id, "is_active": true})

	var user entity.User
	if err := r.adapter.Get(ctx, &user, qb, "users.get_by_id"); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, ErrNotFound
		}
		r.log.Error("failed to get user", zap.Int("user_id", id), zap.Error(err))
		return entity.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	qb := adapter.Builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email, "is_active": true})

	var user entity.User
	if err := r.adapter.Get(ctx, &user, qb, "users.get_by_email"); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, ErrNotFound
		}
		r.log.Error("failed to get user by email", zap.String("email", email), zap.Error(err))
		return entity.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *userRepository) Add(ctx context.Context, user entity.User) (entity.User, error) {
	qb := adapter.Builder.
		Insert("users").
		Columns("email", "password_hash", "first_name", "last_name",
			"phone_number", "created_date", "is_active", "created_by").
		Values(user.Email, user.PasswordHash, user.FirstName, user.LastName,
			user.PhoneNumber, user.CreatedDate, user.IsActive, user.CreatedBy).
		Suffix("RETURNING id")

	var id int
	if err := r.adapter.Get(ctx, &id, qb, "users.add"); err != nil {
		r.log.Error("failed to add user", zap.String("email", user.Email), zap.Error(err))
		return entity.User{}, fmt.Errorf("failed to add user: %w", err)
	}
	user.ID = id
	return user, nil
}

// Update writes the mutable profile fields. Email and password_hash are
// deliberately not part of the statement.
func (r *userRepository) Update(ctx context.Context, user entity.User) error {
	qb := adapter.Builder.
		Update("users").
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("phone_number", user.PhoneNumber).
		Set("modified_date", user.ModifiedDate).
		Set("modified_by", user.ModifiedBy).
		Where(sq.Eq{"id": user.ID})

	if _, err := r.adapter.Exec(ctx, qb, "users.update"); err != nil {
		r.log.Error("failed to update user", zap.Int("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	qb := adapter.Builder.
		Update("users").
		Set("is_active", false).
		Set("modified_date", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if _, err := r.adapter.Exec(ctx, qb, "users.delete"); err != nil {
		r.log.Error("failed to delete user", zap.Int("user_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *userRepository) Exists(ctx context.Context, id int) (bool, error) {
	qb := adapter.Builder.
		Select("1").
		From("users").
		Where(sq.Eq{"id": id, "is_active": true})

	var one int
	if err := r.adapter.Get(ctx, &one, qb, "users.exists"); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		r.log.Error("failed to check user existence", zap.Int("user_id", id), zap.Error(err))
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return true, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	qb := adapter.Builder.
		Select("1").
		From("users").
		Where(sq.Eq{"email": email, "is_active": true})

	var one int
	if err := r.adapter.Get(ctx, &one, qb, "users.email_exists"); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		r.log.Error("failed to check email existence", zap.String("email", email), zap.Error(err))
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return true, nil
}

func (r *userRepository) Search(ctx context.Context, term string) ([]entity.User, error) {
	pattern := "%" + term + "%"
	qb := adapter.Builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"is_active": true}).
		Where(sq.Or{
			sq.ILike{"email": pattern},
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
		}).
		OrderBy("created_date DESC")

	users := []entity.User{}
	if err := r.adapter.Select(ctx, &users, qb, "users.search"); err != nil {
		r.log.Error("failed to search users", zap.String("term", term), zap.Error(err))
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

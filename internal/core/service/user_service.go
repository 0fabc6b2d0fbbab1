package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tourbook/internal/core/dto"
	"tourbook/internal/core/mapper"
	"tourbook/internal/core/repository"
	"tourbook/pkg/apperrors"
)

// UserService implements user management. Creating a user with an email
// already held by an active user fails with a business-rule violation
// before any storage write.
type UserService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	s.log.Info("getting all users")
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToResponses(users), nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (*dto.UserResponse, error) {
	s.log.Info("getting user", zap.Int("user_id", id))
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("user not found", zap.Int("user_id", id))
			return nil, nil
		}
		return nil, err
	}
	resp := mapper.UserToResponse(user)
	return &resp, nil
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error) {
	s.log.Info("creating user", zap.String("email", req.Email))

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if exists {
		s.log.Warn("email already registered", zap.String("email", req.Email))
		return dto.UserResponse{}, apperrors.BusinessRule(fmt.Sprintf("email %s already exists", req.Email))
	}

	user, err := mapper.UserFromCreate(req, time.Now().UTC())
	if err != nil {
		return dto.UserResponse{}, err
	}

	created, err := s.repo.Add(ctx, user)
	if err != nil {
		return dto.UserResponse{}, err
	}

	s.log.Info("user created", zap.Int("user_id", created.ID))
	return mapper.UserToResponse(created), nil
}

func (s *UserService) Update(ctx context.Context, id int, req dto.UpdateUserRequest) error {
	s.log.Info("updating user", zap.Int("user_id", id))

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("user not found for update", zap.Int("user_id", id))
			return apperrors.NotFoundWithID("User", id)
		}
		return err
	}

	mapper.ApplyUserUpdate(&user, req, time.Now().UTC())
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info("user updated", zap.Int("user_id", id))
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	s.log.Info("deleting user", zap.Int("user_id", id))

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		s.log.Warn("user not found for delete", zap.Int("user_id", id))
		return apperrors.NotFoundWithID("User", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("user deleted", zap.Int("user_id", id))
	return nil
}

func (s *UserService) Search(ctx context.Context, term string) ([]dto.UserResponse, error) {
	s.log.Info("searching users", zap.String("term", term))
	users, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToResponses(users), nil
}

// Authenticate verifies credentials against the stored bcrypt hash. An
// unknown email and a wrong password are indistinguishable to the caller:
// both come back as (nil, nil).
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*dto.UserAuthResponse, error) {
	s.log.Info("authenticating user", zap.String("email", email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("authentication failed: user not found", zap.String("email", email))
			return nil, nil
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Warn("authentication failed: invalid password", zap.String("email", email))
		return nil, nil
	}

	s.log.Info("user authenticated", zap.Int("user_id", user.ID))
	resp := mapper.UserToAuthResponse(user)
	return &resp, nil
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repo.EmailExists(ctx, email)
}

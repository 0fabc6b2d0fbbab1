package mapper

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tourbook/internal/core/dto"
	"tourbook/internal/core/entity"
)

func UserToResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		CreatedDate: u.CreatedDate,
		IsActive:    u.IsActive,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserToResponse(u))
	}
	return out
}

func UserToAuthResponse(u entity.User) dto.UserAuthResponse {
	return dto.UserAuthResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UserFromCreate builds a fresh entity from the create request. The
// plaintext password is hashed with bcrypt and never stored.
func UserFromCreate(req dto.CreateUserRequest, now time.Time) (entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = defaultActor
	}
	return entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		CreatedDate:  now,
		IsActive:     true,
		CreatedBy:    createdBy,
	}, nil
}

// ApplyUserUpdate merges the update request onto an already loaded entity.
// Email and PasswordHash are credentials and cannot be changed here; ID,
// CreatedDate, CreatedBy and IsActive are never touched either.
func ApplyUserUpdate(u *entity.User, req dto.UpdateUserRequest, now time.Time) {
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.PhoneNumber = req.PhoneNumber
	u.ModifiedDate = &now
	u.ModifiedBy = actorOrDefault(req.ModifiedBy)
}

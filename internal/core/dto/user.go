package dto

import "time"

// UserResponse is the read shape of a user. It never carries password material.
type UserResponse struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedDate time.Time `json:"created_date"`
	IsActive    bool      `json:"is_active"`
}

type CreateUserRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	CreatedBy   string  `json:"created_by,omitempty"`
}

// UpdateUserRequest cannot change email or password.
type UpdateUserRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	ModifiedBy  string  `json:"modified_by,omitempty"`
}

// UserAuthResponse is returned by a successful authentication.
type UserAuthResponse struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

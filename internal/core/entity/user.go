package entity

import "time"

// User represents a registered user of the system.
type User struct {
	ID           int        `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	PhoneNumber  *string    `json:"phone_number,omitempty" db:"phone_number"`
	CreatedDate  time.Time  `json:"created_date" db:"created_date"`
	ModifiedDate *time.Time `json:"modified_date,omitempty" db:"modified_date"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedBy    string     `json:"created_by" db:"created_by"`
	ModifiedBy   *string    `json:"modified_by,omitempty" db:"modified_by"`
}

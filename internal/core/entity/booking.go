package entity

import "time"

// Recognized booking statuses. The status column accepts any string,
// these labels are convention only.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Booking links a user to a tour. UserEmail and TourName are denormalized
// from the related rows on every read path.
type Booking struct {
	ID             int        `json:"id" db:"id"`
	UserID         int        `json:"user_id" db:"user_id"`
	TourID         int        `json:"tour_id" db:"tour_id"`
	BookingDate    time.Time  `json:"booking_date" db:"booking_date"`
	NumberOfPeople int        `json:"number_of_people" db:"number_of_people"`
	TotalPrice     float64    `json:"total_price" db:"total_price"`
	Status         string     `json:"status" db:"status"`
	CreatedDate    time.Time  `json:"created_date" db:"created_date"`
	ModifiedDate   *time.Time `json:"modified_date,omitempty" db:"modified_date"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	CreatedBy      string     `json:"created_by" db:"created_by"`
	ModifiedBy     *string    `json:"modified_by,omitempty" db:"modified_by"`

	UserEmail string `json:"user_email" db:"user_email"`
	TourName  string `json:"tour_name" db:"tour_name"`
}

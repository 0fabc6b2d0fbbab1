package dto

import "time"

// BookingResponse is the read shape of a booking, denormalized with the
// owning user's email and the booked tour's name.
type BookingResponse struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	TourID         int       `json:"tour_id"`
	UserEmail      string    `json:"user_email"`
	TourName       string    `json:"tour_name"`
	BookingDate    time.Time `json:"booking_date"`
	NumberOfPeople int       `json:"number_of_people"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	CreatedDate    time.Time `json:"created_date"`
}

type CreateBookingRequest struct {
	UserID         int       `json:"user_id"`
	TourID         int       `json:"tour_id"`
	BookingDate    time.Time `json:"booking_date"`
	NumberOfPeople int       `json:"number_of_people"`
	TotalPrice     float64   `json:"total_price"`
	CreatedBy      string    `json:"created_by,omitempty"`
}

// UpdateBookingRequest cannot move a booking to another user or tour.
type UpdateBookingRequest struct {
	BookingDate    time.Time `json:"booking_date"`
	NumberOfPeople int       `json:"number_of_people"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	ModifiedBy     string    `json:"modified_by,omitempty"`
}

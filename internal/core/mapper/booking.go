package mapper

import (
	"time"

	"tourbook/internal/core/dto"
	"tourbook/internal/core/entity"
)

func BookingToResponse(b entity.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		TourID:         b.TourID,
		UserEmail:      b.UserEmail,
		TourName:       b.TourName,
		BookingDate:    b.BookingDate,
		NumberOfPeople: b.NumberOfPeople,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
		CreatedDate:    b.CreatedDate,
	}
}

func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}

// BookingFromCreate builds a fresh entity from the create request. A new
// booking always starts out Pending, whatever the caller sent.
func BookingFromCreate(req dto.CreateBookingRequest, now time.Time) entity.Booking {
	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = defaultActor
	}
	return entity.Booking{
		UserID:         req.UserID,
		TourID:         req.TourID,
		BookingDate:    req.BookingDate,
		NumberOfPeople: req.NumberOfPeople,
		TotalPrice:     req.TotalPrice,
		Status:         entity.StatusPending,
		CreatedDate:    now,
		IsActive:       true,
		CreatedBy:      createdBy,
	}
}

// ApplyBookingUpdate merges the update request onto an already loaded
// entity. A booking cannot be moved to another user or tour; ID,
// CreatedDate, CreatedBy and IsActive are never touched.
func ApplyBookingUpdate(b *entity.Booking, req dto.UpdateBookingRequest, now time.Time) {
	b.BookingDate = req.BookingDate
	b.NumberOfPeople = req.NumberOfPeople
	b.TotalPrice = req.TotalPrice
	b.Status = req.Status
	b.ModifiedDate = &now
	b.ModifiedBy = actorOrDefault(req.ModifiedBy)
}

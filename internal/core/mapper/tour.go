// Package mapper holds the transforms between entities and their DTO
// shapes. Every function is pure: timestamps are passed in by the caller
// and nothing is read from or written to storage. The single exception is
// password hashing on the user create path.
package mapper

import (
	"time"

	"tourbook/internal/core/dto"
	"tourbook/internal/core/entity"
)

const defaultActor = "System"

func TourToResponse(t entity.Tour) dto.TourResponse {
	return dto.TourResponse{
		ID:          t.ID,
		Name:        t.Name,
		Place:       t.Place,
		Days:        t.Days,
		Price:       t.Price,
		Locations:   t.Locations,
		Description: t.Description,
		PicturePath: t.PicturePath,
		CreatedDate: t.CreatedDate,
		IsActive:    t.IsActive,
	}
}

func ToursToResponses(tours []entity.Tour) []dto.TourResponse {
	out := make([]dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, TourToResponse(t))
	}
	return out
}

// TourFromCreate builds a fresh entity from the create request. Identity is
// left unset for storage to assign.
func TourFromCreate(req dto.CreateTourRequest, now time.Time) entity.Tour {
	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = defaultActor
	}
	return entity.Tour{
		Name:        req.Name,
		Place:       req.Place,
		Days:        req.Days,
		Price:       req.Price,
		Locations:   req.Locations,
		Description: req.Description,
		PicturePath: req.PicturePath,
		CreatedDate: now,
		IsActive:    true,
		CreatedBy:   createdBy,
	}
}

// ApplyTourUpdate merges the update request onto an already loaded entity.
// ID, CreatedDate, CreatedBy and IsActive are never touched.
func ApplyTourUpdate(t *entity.Tour, req dto.UpdateTourRequest, now time.Time) {
	t.Name = req.Name
	t.Place = req.Place
	t.Days = req.Days
	t.Price = req.Price
	t.Locations = req.Locations
	t.Description = req.Description
	t.PicturePath = req.PicturePath
	t.ModifiedDate = &now
	t.ModifiedBy = actorOrDefault(req.ModifiedBy)
}

func actorOrDefault(actor string) *string {
	if actor == "" {
		actor = defaultActor
	}
	return &actor
}

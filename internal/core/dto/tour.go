package dto

import "time"

// TourResponse is the read shape of a tour.
type TourResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Place       string    `json:"place"`
	Days        int       `json:"days"`
	Price       float64   `json:"price"`
	Locations   string    `json:"locations"`
	Description string    `json:"description"`
	PicturePath *string   `json:"picture_path,omitempty"`
	CreatedDate time.Time `json:"created_date"`
	IsActive    bool      `json:"is_active"`
}

type CreateTourRequest struct {
	Name        string  `json:"name"`
	Place       string  `json:"place"`
	Days        int     `json:"days"`
	Price       float64 `json:"price"`
	Locations   string  `json:"locations"`
	Description string  `json:"description"`
	PicturePath *string `json:"picture_path,omitempty"`
	CreatedBy   string  `json:"created_by,omitempty"`
}

type UpdateTourRequest struct {
	Name        string  `json:"name"`
	Place       string  `json:"place"`
	Days        int     `json:"days"`
	Price       float64 `json:"price"`
	Locations   string  `json:"locations"`
	Description string  `json:"description"`
	PicturePath *string `json:"picture_path,omitempty"`
	ModifiedBy  string  `json:"modified_by,omitempty"`
}

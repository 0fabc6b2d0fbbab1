package entity

import "time"

// Tour represents a tour package offered in the catalog.
type Tour struct {
	ID           int        `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Place        string     `json:"place" db:"place"`
	Days         int        `json:"days" db:"days"`
	Price        float64    `json:"price" db:"price"`
	Locations    string     `json:"locations" db:"locations"`
	Description  string     `json:"description" db:"description"`
	PicturePath  *string    `json:"picture_path,omitempty" db:"picture_path"`
	CreatedDate  time.Time  `json:"created_date" db:"created_date"`
	ModifiedDate *time.Time `json:"modified_date,omitempty" db:"modified_date"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedBy    string     `json:"created_by" db:"created_by"`
	ModifiedBy   *string    `json:"modified_by,omitempty" db:"modified_by"`
}

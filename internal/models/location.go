package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationDB represents a location record in the database
type LocationDB struct {
	LocationID  uuid.UUID  `db:"location_id"` // Primary key
	Name        string     `db:"name"`        // Display name
	Description *string    `db:"description"` // Optional description
	Latitude    float64    `db:"latitude"`    // Latitude in [-90, 90]
	Longitude   float64    `db:"longitude"`   // Longitude in [-180, 180]
	CategoryID  *uuid.UUID `db:"category_id"` // Optional category reference
	OwnerID     uuid.UUID  `db:"owner_id"`    // Owning user
	CreatedAt   time.Time  `db:"created_at"`  // Creation timestamp
	UpdatedAt   *time.Time `db:"updated_at"`  // Last update timestamp, nil until first update
}

// Location is the outward representation of a location.
type Location struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// NewLocation maps a database record to its outward representation.
func NewLocation(l *LocationDB) Location {
	return Location{
		ID:          l.LocationID,
		Name:        l.Name,
		Description: l.Description,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		CategoryID:  l.CategoryID,
		OwnerID:     l.OwnerID,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// LocationCreate carries the fields required to create a location.
type LocationCreate struct {
	Name        string
	Description *string
	Latitude    float64
	Longitude   float64
	CategoryID  *uuid.UUID
}

// LocationUpdate carries a partial update; nil fields are left untouched.
type LocationUpdate struct {
	Name        *string
	Description *string
	Latitude    *float64
	Longitude   *float64
	CategoryID  *uuid.UUID
}

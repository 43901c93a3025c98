package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryDB represents a category record in the database
type CategoryDB struct {
	CategoryID  uuid.UUID `db:"category_id"` // Primary key
	Name        string    `db:"name"`        // Unique name
	Description *string   `db:"description"` // Optional description
	CreatedAt   time.Time `db:"created_at"`  // Creation timestamp
}

// Category is the outward representation of a category.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCategory maps a database record to its outward representation.
func NewCategory(c *CategoryDB) Category {
	return Category{
		ID:          c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Email        string    `db:"email"`         // Unique email
	Username     string    `db:"username"`      // Unique username
	PasswordHash string    `db:"password_hash"` // Hashed password
	IsActive     bool      `db:"is_active"`     // Account active flag
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
}

// User is the outward representation of a user. It carries no password hash.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser maps a database record to its outward representation.
func NewUser(u *UserDB) User {
	return User{
		ID:        u.UserID,
		Email:     u.Email,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

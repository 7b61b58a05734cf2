package domain

import (
	"errors"
	"time"
)

// Canonical failure reasons. Their messages are part of the public API and
// are rendered verbatim in the response envelope.
var (
	ErrMissingFields = errors.New("Email and username are required")
	ErrUserExists    = errors.New("User with this email already exists")
	ErrUserNotFound  = errors.New("User not found")
)

// User is a stored user record. Records are never mutated after creation.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

package handler

import (
	"time"

	"github.com/userhub/users-api/internal/core/domain"
)

const msgInvalidBody = "Invalid request body"

// --- Request / Response types ---

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// errorResponse is the failure envelope written directly by handlers.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Response shapes below exist for the swagger docs only; handlers serialize
// ports.Envelope directly.

type userResponse struct {
	Success bool         `json:"success"`
	Data    *domain.User `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
}

type userListResponse struct {
	Success bool          `json:"success"`
	Data    []domain.User `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type statusResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Env       string    `json:"env"`
}

package ports

import (
	"context"

	"github.com/userhub/users-api/internal/core/domain"
)

// Envelope is the uniform outcome returned by every user operation.
// Data is dropped from the JSON output only when it is the zero value, so an
// empty but non-nil list still renders as [].
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitzero"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Fail builds an unsuccessful envelope carrying reason as the error text.
func Fail[T any](reason error) Envelope[T] {
	return Envelope[T]{Error: reason.Error()}
}

// CreateUserInput is the DTO passed from the transport layer to UserService.
// Password is accepted for API compatibility and otherwise ignored.
type CreateUserInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string
}

// UserService defines use-case operations for users. Expected failures are
// reported through the envelope, never as Go errors.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) Envelope[*domain.User]
	GetUser(ctx context.Context, id string) Envelope[*domain.User]
	ListUsers(ctx context.Context) Envelope[[]domain.User]
	DeleteUser(ctx context.Context, id string) Envelope[struct{}]
}

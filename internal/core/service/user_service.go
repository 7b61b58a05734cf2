package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/userhub/users-api/internal/pkg/metrics"
	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

// Operation label values for metrics.UserOperationsTotal.
const (
	opCreate = "create"
	opGet    = "get"
	opList   = "list"
	opDelete = "delete"
)

const (
	msgUserCreated = "User created successfully"
	msgUserDeleted = "User deleted successfully"
)

// UserService implements ports.UserService on top of a record store.
type UserService struct {
	repo     ports.UserRepository
	validate *inputValidator
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, validate: newInputValidator(), logger: logger}
}

// CreateUser validates presence of username and email, rejects duplicate
// emails, and stores the new record. The password is not used.
//
// The duplicate check and the insert are separate store calls, so concurrent
// creates with the same email are not guaranteed to be rejected.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) ports.Envelope[*domain.User] {
	if violations := s.validate.Violations(input); len(violations) > 0 {
		s.logger.Debug().Strs("violations", violations).Msg("create user rejected")
		metrics.UserCreateRejectionsTotal.WithLabelValues("missing_fields").Inc()
		return s.fail(opCreate, domain.ErrMissingFields)
	}

	if _, exists := s.repo.FindByEmail(ctx, input.Email); exists {
		s.logger.Debug().Str("email", input.Email).Msg("create user rejected: email taken")
		metrics.UserCreateRejectionsTotal.WithLabelValues("duplicate_email").Inc()
		return s.fail(opCreate, domain.ErrUserExists)
	}

	user := s.repo.Create(ctx, input.Username, input.Email)
	metrics.UsersStored.Set(float64(s.repo.Count(ctx)))
	metrics.UserOperationsTotal.WithLabelValues(opCreate, metrics.ResultSuccess).Inc()

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")

	return ports.Envelope[*domain.User]{
		Success: true,
		Data:    user,
		Message: msgUserCreated,
	}
}

func (s *UserService) GetUser(ctx context.Context, id string) ports.Envelope[*domain.User] {
	user, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return s.fail(opGet, domain.ErrUserNotFound)
	}

	metrics.UserOperationsTotal.WithLabelValues(opGet, metrics.ResultSuccess).Inc()
	return ports.Envelope[*domain.User]{Success: true, Data: user}
}

// ListUsers always succeeds; Data is an empty, non-nil slice when the store is empty.
func (s *UserService) ListUsers(ctx context.Context) ports.Envelope[[]domain.User] {
	users := s.repo.List(ctx)
	metrics.UserOperationsTotal.WithLabelValues(opList, metrics.ResultSuccess).Inc()
	return ports.Envelope[[]domain.User]{Success: true, Data: users}
}

func (s *UserService) DeleteUser(ctx context.Context, id string) ports.Envelope[struct{}] {
	if !s.repo.Delete(ctx, id) {
		metrics.UserOperationsTotal.WithLabelValues(opDelete, metrics.ResultFailure).Inc()
		return ports.Fail[struct{}](domain.ErrUserNotFound)
	}

	metrics.UsersStored.Set(float64(s.repo.Count(ctx)))
	metrics.UserOperationsTotal.WithLabelValues(opDelete, metrics.ResultSuccess).Inc()
	s.logger.Info().Str("user_id", id).Msg("user deleted")

	return ports.Envelope[struct{}]{Success: true, Message: msgUserDeleted}
}

func (s *UserService) fail(op string, reason error) ports.Envelope[*domain.User] {
	metrics.UserOperationsTotal.WithLabelValues(op, metrics.ResultFailure).Inc()
	return ports.Fail[*domain.User](reason)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/task-api/internal/api/metrics"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// UserService implements the user directory use cases.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser registers a new account with the caller-supplied role. The
// password is stored as a bcrypt hash, never verbatim.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser renames the user. Name is the only mutable field.
func (s *UserService) UpdateUser(ctx context.Context, id, name string) (*domain.User, error) {
	return s.repo.UpdateName(ctx, id, name)
}

// DeleteUser removes the account permanently. Outstanding tokens for the
// user stop validating as soon as the row is gone.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context, page ports.PageRequest) (*ports.UserPage, error) {
	return s.listUsers(ctx, ports.UserFilter{}, page)
}

func (s *UserService) FilterUsersByName(ctx context.Context, name string, page ports.PageRequest) (*ports.UserPage, error) {
	return s.listUsers(ctx, ports.UserFilter{NameContains: name}, page)
}

func (s *UserService) listUsers(ctx context.Context, filter ports.UserFilter, page ports.PageRequest) (*ports.UserPage, error) {
	number, size := normalizePage(page)

	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	meta, offset, fetch := paginate(count, number, size)
	if !fetch {
		return &ports.UserPage{Items: []*domain.User{}, Metadata: meta}, nil
	}

	items, err := s.repo.List(ctx, filter, offset, size)
	if err != nil {
		return nil, err
	}
	return &ports.UserPage{Items: items, Metadata: meta}, nil
}

package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// CreateUserInput carries all data needed to register a new user. Role comes
// from the (admin) caller's payload and must be a known role.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UserService defines use-case operations over the user directory.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// UpdateUser renames the user; name is the only mutable field.
	UpdateUser(ctx context.Context, id, name string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context, page PageRequest) (*UserPage, error)
	// FilterUsersByName lists users whose name contains the given substring,
	// case-insensitively.
	FilterUsersByName(ctx context.Context, name string, page PageRequest) (*UserPage, error)
}

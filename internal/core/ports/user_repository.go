package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// UserFilter carries the optional predicates applied by Count and List.
type UserFilter struct {
	// NameContains matches a case-insensitive substring of the user name.
	NameContains string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateName changes the one mutable user field and returns the updated
	// row. Returns domain.ErrUserNotFound when id does not resolve.
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter UserFilter) (int64, error)
	// List returns a page of users matching filter, newest first.
	List(ctx context.Context, filter UserFilter, offset, limit int) ([]*domain.User, error)
}

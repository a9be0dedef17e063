package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// TaskFilter carries the optional equality predicates applied by Count and
// List. Empty fields are not filtered on.
type TaskFilter struct {
	Status     domain.TaskStatus
	Priority   domain.TaskPriority
	AssignedTo string
}

// TaskRepository defines persistence operations for tasks. All single-row
// mutations return domain.ErrTaskNotFound when the id does not resolve, and
// bump updated_at on success.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	SetAssignee(ctx context.Context, id, userID string) (*domain.Task, error)
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	SetPriority(ctx context.Context, id string, priority domain.TaskPriority) (*domain.Task, error)
	SetDescription(ctx context.Context, id, description string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter TaskFilter) (int64, error)
	// List returns a page of tasks matching filter, newest first.
	List(ctx context.Context, filter TaskFilter, offset, limit int) ([]*domain.Task, error)
}

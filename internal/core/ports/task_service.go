package ports

import (
	"context"
	"time"

	"github.com/taskforge/task-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task. Status and
// priority are not accepted from callers: every new task starts Open/Medium.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	// AssignedTo is optional; when set it must resolve to an existing user.
	AssignedTo string
}

// FilterTasksInput carries the equality filters for the task listing
// endpoints. Empty fields are not filtered on.
type FilterTasksInput struct {
	Status     domain.TaskStatus
	Priority   domain.TaskPriority
	AssignedTo string
}

// TaskService defines use-case operations over the task registry.
type TaskService interface {
	// CreateTask creates a task owned by the caller identified by claim.
	CreateTask(ctx context.Context, input CreateTaskInput, claim domain.Claim) (*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	ListTasks(ctx context.Context, page PageRequest) (*TaskPage, error)
	// AssignTask sets the assignee, which must resolve to an existing user.
	AssignTask(ctx context.Context, taskID, userID string) (*domain.Task, error)
	ChangePriority(ctx context.Context, taskID string, priority domain.TaskPriority) (*domain.Task, error)
	ChangeStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error)
	ChangeDescription(ctx context.Context, taskID, description string) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	FilterTasks(ctx context.Context, input FilterTasksInput, page PageRequest) (*TaskPage, error)
	// FilterTasksForUser is FilterTasks scoped to a single assignee, who
	// must resolve to an existing user.
	FilterTasksForUser(ctx context.Context, userID string, input FilterTasksInput, page PageRequest) (*TaskPage, error)
}

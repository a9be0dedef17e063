package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/api/metrics"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// TaskService implements the task registry use cases. It consults the user
// repository to resolve assignees; tasks reference users by id only.
type TaskService struct {
	repo   ports.TaskRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, users ports.UserRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, users: users, logger: logger}
}

// CreateTask creates a task owned by the caller. Status and priority from
// the payload are ignored: every task starts Open/Medium.
func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput, claim domain.Claim) (*domain.Task, error) {
	if input.AssignedTo != "" {
		if err := s.resolveAssignee(ctx, input.AssignedTo); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      domain.StatusOpen,
		Priority:    domain.PriorityMedium,
		CreatedBy:   claim.UserID,
		AssignedTo:  input.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	metrics.TasksCreatedTotal.Inc()
	s.logger.Info().Str("task_id", task.ID).Str("created_by", claim.UserID).Msg("task created")
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, page ports.PageRequest) (*ports.TaskPage, error) {
	return s.listTasks(ctx, ports.TaskFilter{}, page)
}

// AssignTask sets the assignee. The user id is resolved first so an invalid
// assignee never touches the task row.
func (s *TaskService) AssignTask(ctx context.Context, taskID, userID string) (*domain.Task, error) {
	if err := s.resolveAssignee(ctx, userID); err != nil {
		return nil, err
	}

	task, err := s.repo.SetAssignee(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("assign").Inc()
	s.logger.Info().Str("task_id", taskID).Str("assigned_to", userID).Msg("task assigned")
	return task, nil
}

func (s *TaskService) ChangePriority(ctx context.Context, taskID string, priority domain.TaskPriority) (*domain.Task, error) {
	if !priority.Valid() {
		return nil, domain.ErrInvalidPriority
	}

	task, err := s.repo.SetPriority(ctx, taskID, priority)
	if err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("priority").Inc()
	return task, nil
}

func (s *TaskService) ChangeStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	task, err := s.repo.SetStatus(ctx, taskID, status)
	if err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("status").Inc()
	return task, nil
}

func (s *TaskService) ChangeDescription(ctx context.Context, taskID, description string) (*domain.Task, error) {
	task, err := s.repo.SetDescription(ctx, taskID, description)
	if err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("description").Inc()
	return task, nil
}

// DeleteTask removes the task permanently.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.repo.Delete(ctx, taskID); err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("task_id", taskID).Msg("task deleted")
	return nil
}

func (s *TaskService) FilterTasks(ctx context.Context, input ports.FilterTasksInput, page ports.PageRequest) (*ports.TaskPage, error) {
	filter, err := taskFilter(input)
	if err != nil {
		return nil, err
	}
	return s.listTasks(ctx, filter, page)
}

func (s *TaskService) FilterTasksForUser(ctx context.Context, userID string, input ports.FilterTasksInput, page ports.PageRequest) (*ports.TaskPage, error) {
	if err := s.resolveAssignee(ctx, userID); err != nil {
		return nil, err
	}

	filter, err := taskFilter(input)
	if err != nil {
		return nil, err
	}
	filter.AssignedTo = userID
	return s.listTasks(ctx, filter, page)
}

func (s *TaskService) listTasks(ctx context.Context, filter ports.TaskFilter, page ports.PageRequest) (*ports.TaskPage, error) {
	number, size := normalizePage(page)

	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	meta, offset, fetch := paginate(count, number, size)
	if !fetch {
		return &ports.TaskPage{Items: []*domain.Task{}, Metadata: meta}, nil
	}

	items, err := s.repo.List(ctx, filter, offset, size)
	if err != nil {
		return nil, err
	}
	return &ports.TaskPage{Items: items, Metadata: meta}, nil
}

// resolveAssignee maps an unresolvable user id to ErrInvalidAssignee.
func (s *TaskService) resolveAssignee(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidAssignee
		}
		return err
	}
	return nil
}

// taskFilter validates the optional status/priority filters. An empty value
// means "no filter"; a present but unknown value is a validation error.
func taskFilter(input ports.FilterTasksInput) (ports.TaskFilter, error) {
	if input.Status != "" && !input.Status.Valid() {
		return ports.TaskFilter{}, domain.ErrInvalidStatus
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return ports.TaskFilter{}, domain.ErrInvalidPriority
	}
	return ports.TaskFilter{Status: input.Status, Priority: input.Priority, AssignedTo: input.AssignedTo}, nil
}

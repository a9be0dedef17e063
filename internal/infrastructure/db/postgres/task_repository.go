package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// TaskRepository is the Postgres implementation of ports.TaskRepository.
type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = "id, title, description, due_date, status, priority, created_by, assigned_to, created_at, updated_at"

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var assignedTo sql.NullString
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Status, &t.Priority,
		&t.CreatedBy, &assignedTo, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	t.AssignedTo = assignedTo.String
	return &t, nil
}

// nullable maps an empty assignee to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tasks (id, title, description, due_date, status, priority, created_by, assigned_to, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.Title, t.Description, t.DueDate, t.Status, t.Priority,
		t.CreatedBy, nullable(t.AssignedTo), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return scanTask(row)
}

func (r *TaskRepository) SetAssignee(ctx context.Context, id, userID string) (*domain.Task, error) {
	return r.setField(ctx, id, "assigned_to", userID)
}

func (r *TaskRepository) SetStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	return r.setField(ctx, id, "status", string(status))
}

func (r *TaskRepository) SetPriority(ctx context.Context, id string, priority domain.TaskPriority) (*domain.Task, error) {
	return r.setField(ctx, id, "priority", string(priority))
}

func (r *TaskRepository) SetDescription(ctx context.Context, id, description string) (*domain.Task, error) {
	return r.setField(ctx, id, "description", description)
}

// setField updates a single column plus updated_at and returns the fresh
// row, or domain.ErrTaskNotFound when the id does not resolve. The column
// name is always one of our own constants, never caller input.
func (r *TaskRepository) setField(ctx context.Context, id, column, value string) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks SET `+column+` = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+taskColumns, id, value)
	return scanTask(row)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Count(ctx context.Context, filter ports.TaskFilter) (int64, error) {
	where, args := taskWhere(filter)

	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

func (r *TaskRepository) List(ctx context.Context, filter ports.TaskFilter, offset, limit int) ([]*domain.Task, error) {
	where, args := taskWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM tasks%s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		taskColumns, where, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// taskWhere builds the WHERE clause for the optional equality filters.
func taskWhere(filter ports.TaskFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		conds = append(conds, fmt.Sprintf("priority = $%d", len(args)))
	}
	if filter.AssignedTo != "" {
		args = append(args, filter.AssignedTo)
		conds = append(conds, fmt.Sprintf("assigned_to = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

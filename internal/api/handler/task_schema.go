package handler

import (
	"time"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

type createTaskRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"dueDate"     validate:"required"`
	// AssignedTo is optional at creation; when present it must resolve to
	// an existing user. Status and priority are ignored if supplied.
	AssignedTo string `json:"assigned_to"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedBy   string    `json:"createdBy"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedBy:   t.CreatedBy,
		AssignedTo:  t.AssignedTo,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type listTasksResponse struct {
	Items    []taskResponse       `json:"items"`
	Metadata pageMetadataResponse `json:"metadata"`
}

func toListTasksResponse(page *ports.TaskPage) listTasksResponse {
	items := make([]taskResponse, 0, len(page.Items))
	for _, t := range page.Items {
		items = append(items, toTaskResponse(t))
	}
	return listTasksResponse{Items: items, Metadata: toPageMetadata(page.Metadata)}
}

type deleteTaskResponse struct {
	Success bool `json:"success"`
}

package domain

import (
	"errors"
	"time"
)

// TaskStatus is the progress state of a task. There is no transition graph:
// any status may move to any other status once the task exists.
type TaskStatus string

const (
	StatusOpen       TaskStatus = "Open"
	StatusInProgress TaskStatus = "InProgress"
	StatusClosed     TaskStatus = "Closed"
)

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrInvalidAssignee = errors.New("invalid assignee")
var ErrInvalidStatus = errors.New("invalid task status")
var ErrInvalidPriority = errors.New("invalid task priority")

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusClosed
}

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is the core aggregate root. CreatedBy is fixed at creation time from
// the caller's claim; AssignedTo is empty until the task is assigned.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     time.Time    `json:"due_date"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedBy   string       `json:"created_by"`
	AssignedTo  string       `json:"assigned_to,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskID is a value object for task identity.
type TaskID struct{ uuid.UUID }

// NewTaskID creates a new TaskID from uuid.
func NewTaskID(id uuid.UUID) TaskID { return TaskID{UUID: id} }

// String returns the canonical string form.
func (t TaskID) String() string { return t.UUID.String() }

// Status is the workflow state of a task. Any status may change to any other.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority validates a priority string.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

// Rank orders priorities for sorting: high > medium > low. Unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Task is a unit of work. It carries both ProjectID and OwnerID directly so that
// task-level authorization never needs a project lookup on reads; the project link
// is re-checked against the owner on writes instead.
type Task struct {
	ID          TaskID
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     time.Time
	ProjectID   ProjectID
	OwnerID     UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskWithRefs is a task plus display fields joined from its project and owner.
// ProjectTitle is nil when the project no longer exists (tasks are not cascade-deleted).
type TaskWithRefs struct {
	Task
	ProjectTitle *string
	OwnerName    string
	OwnerEmail   string
}

package task

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// ListTasks returns the requester's tasks matching the filter, joined with
// project title and owner display fields, ordered by due date then priority.
type ListTasks struct {
	tasks ports.TaskRepository
}

func NewListTasks(tasks ports.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

func (uc *ListTasks) Execute(ctx context.Context, requester domain.UserID, filter ports.TaskFilter) ([]*domain.TaskWithRefs, error) {
	// The owner scope comes from the authenticated identity, never the filter input.
	filter.OwnerID = requester
	return uc.tasks.List(ctx, filter)
}

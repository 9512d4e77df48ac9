package task

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ownership"
	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// GetTask loads a single task with its joined display fields after the
// ownership check.
type GetTask struct {
	tasks ports.TaskRepository
}

func NewGetTask(tasks ports.TaskRepository) *GetTask {
	return &GetTask{tasks: tasks}
}

func (uc *GetTask) Execute(ctx context.Context, id domain.TaskID, requester domain.UserID) (*domain.TaskWithRefs, error) {
	task, err := uc.tasks.GetWithRefs(ctx, id)
	if err != nil {
		return nil, err
	}
	var bare *domain.Task
	if task != nil {
		bare = &task.Task
	}
	if err := ownership.CheckTask(bare, requester); err != nil {
		return nil, err
	}
	return task, nil
}

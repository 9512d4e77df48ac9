package task

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ownership"
	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// DeleteTask hard-deletes a task the requester owns.
type DeleteTask struct {
	tasks ports.TaskRepository
}

func NewDeleteTask(tasks ports.TaskRepository) *DeleteTask {
	return &DeleteTask{tasks: tasks}
}

func (uc *DeleteTask) Execute(ctx context.Context, id domain.TaskID, requester domain.UserID) error {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.CheckTask(task, requester); err != nil {
		return err
	}
	return uc.tasks.Delete(ctx, id)
}

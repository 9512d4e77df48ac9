package task

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/internal/application/ownership"
	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// UpdateTask applies a field patch to a task the requester owns. When the patch
// moves the task to another project, the new project is guarded with the same
// requester before anything is written.
type UpdateTask struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
}

func NewUpdateTask(tasks ports.TaskRepository, projects ports.ProjectRepository) *UpdateTask {
	return &UpdateTask{tasks: tasks, projects: projects}
}

func (uc *UpdateTask) Execute(ctx context.Context, id domain.TaskID, requester domain.UserID, patch ports.TaskPatch) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.CheckTask(task, requester); err != nil {
		return nil, err
	}
	if patch.ProjectID != nil && *patch.ProjectID != task.ProjectID {
		project, err := uc.projects.GetByID(ctx, *patch.ProjectID)
		if err != nil {
			return nil, err
		}
		if err := ownership.CheckProjectRef(project, requester); err != nil {
			return nil, err
		}
		task.ProjectID = *patch.ProjectID
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	task.UpdatedAt = time.Now()
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

package task

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ownership"
	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// ListProjectTasks returns the tasks in one project. The project itself is
// guarded first, so a foreign project id fails as not-found instead of
// returning an empty list.
type ListProjectTasks struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
}

func NewListProjectTasks(tasks ports.TaskRepository, projects ports.ProjectRepository) *ListProjectTasks {
	return &ListProjectTasks{tasks: tasks, projects: projects}
}

func (uc *ListProjectTasks) Execute(ctx context.Context, projectID domain.ProjectID, requester domain.UserID) ([]*domain.TaskWithRefs, error) {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := ownership.CheckProjectRef(project, requester); err != nil {
		return nil, err
	}
	return uc.tasks.ListByProject(ctx, requester, projectID)
}

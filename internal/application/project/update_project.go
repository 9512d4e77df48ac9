package project

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/internal/application/ownership"
	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// UpdateProject applies a field patch to a project the requester owns.
// Unspecified fields are preserved; the owner never changes.
type UpdateProject struct {
	projects ports.ProjectRepository
}

func NewUpdateProject(projects ports.ProjectRepository) *UpdateProject {
	return &UpdateProject{projects: projects}
}

func (uc *UpdateProject) Execute(ctx context.Context, id domain.ProjectID, requester domain.UserID, patch ports.ProjectPatch) (*domain.Project, error) {
	project, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.CheckProject(project, requester); err != nil {
		return nil, err
	}
	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	project.UpdatedAt = time.Now()
	if err := uc.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

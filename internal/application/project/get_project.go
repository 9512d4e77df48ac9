package project

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ownership"
	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// GetProject loads a single project after the ownership check.
type GetProject struct {
	projects ports.ProjectRepository
}

func NewGetProject(projects ports.ProjectRepository) *GetProject {
	return &GetProject{projects: projects}
}

func (uc *GetProject) Execute(ctx context.Context, id domain.ProjectID, requester domain.UserID) (*domain.Project, error) {
	project, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.CheckProject(project, requester); err != nil {
		return nil, err
	}
	return project, nil
}

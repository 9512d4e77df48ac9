package project

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ownership"
	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// DeleteProject hard-deletes a project the requester owns. Tasks under the
// project are left in place; they keep working by id and simply lose their
// project join on listing.
type DeleteProject struct {
	projects ports.ProjectRepository
}

func NewDeleteProject(projects ports.ProjectRepository) *DeleteProject {
	return &DeleteProject{projects: projects}
}

func (uc *DeleteProject) Execute(ctx context.Context, id domain.ProjectID, requester domain.UserID) error {
	project, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.CheckProject(project, requester); err != nil {
		return err
	}
	return uc.projects.Delete(ctx, id)
}

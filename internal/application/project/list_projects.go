package project

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// ListProjects returns every project owned by the requester.
type ListProjects struct {
	projects ports.ProjectRepository
}

func NewListProjects(projects ports.ProjectRepository) *ListProjects {
	return &ListProjects{projects: projects}
}

func (uc *ListProjects) Execute(ctx context.Context, requester domain.UserID) ([]*domain.Project, error) {
	return uc.projects.ListByOwner(ctx, requester)
}

package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// CreateProjectInput is the validated request body plus the requesting user.
type CreateProjectInput struct {
	OwnerID     domain.UserID
	Title       string
	Description string
}

// CreateProject persists a new project owned by the requester.
type CreateProject struct {
	projects ports.ProjectRepository
}

func NewCreateProject(projects ports.ProjectRepository) *CreateProject {
	return &CreateProject{projects: projects}
}

func (uc *CreateProject) Execute(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	now := time.Now()
	project := &domain.Project{
		ID:          domain.NewProjectID(uuid.New()),
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive/internal/application/ownership"
	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// CreateTaskInput is the validated request body plus the requesting user.
// Status and Priority are optional; they default to todo and medium.
type CreateTaskInput struct {
	OwnerID     domain.UserID
	ProjectID   domain.ProjectID
	Title       string
	Description string
	Status      domain.Status
	Priority    domain.Priority
	DueDate     time.Time
}

// CreateTask persists a new task after confirming the referenced project exists
// and belongs to the requester. A foreign or missing project fails as not-found
// before anything is written.
type CreateTask struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
}

func NewCreateTask(tasks ports.TaskRepository, projects ports.ProjectRepository) *CreateTask {
	return &CreateTask{tasks: tasks, projects: projects}
}

func (uc *CreateTask) Execute(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	project, err := uc.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := ownership.CheckProjectRef(project, input.OwnerID); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = domain.StatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	now := time.Now()
	task := &domain.Task{
		ID:          domain.NewTaskID(uuid.New()),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		ProjectID:   input.ProjectID,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

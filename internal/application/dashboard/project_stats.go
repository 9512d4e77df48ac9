package dashboard

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// ProjectStats groups one project's tasks by status, scoped to the requester.
// Only statuses actually present appear; entry order is not guaranteed.
type ProjectStats struct {
	tasks ports.TaskRepository
}

func NewProjectStats(tasks ports.TaskRepository) *ProjectStats {
	return &ProjectStats{tasks: tasks}
}

func (uc *ProjectStats) Execute(ctx context.Context, requester domain.UserID, projectID domain.ProjectID) ([]ports.StatusCount, error) {
	counts, err := uc.tasks.StatusCounts(ctx, requester, projectID)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []ports.StatusCount{}
	}
	return counts, nil
}

package ports

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/internal/domain"
)

// TaskFilter is the set of optional listing criteria plus the mandatory owner scope.
// Every listing is owner-scoped; there is no cross-user visibility.
type TaskFilter struct {
	OwnerID   domain.UserID
	Status    *domain.Status
	Priority  *domain.Priority
	ProjectID *domain.ProjectID
	DueBefore *time.Time // inclusive upper bound on DueDate
	DueAfter  *time.Time // inclusive lower bound on DueDate
	Search    string     // case-insensitive substring over title OR description
}

// ProjectPatch carries the fields of an update request; nil means "leave unchanged".
type ProjectPatch struct {
	Title       *string
	Description *string
}

// TaskPatch carries the fields of an update request; nil means "leave unchanged".
// OwnerID is deliberately absent: ownership is immutable.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.Status
	Priority    *domain.Priority
	DueDate     *time.Time
	ProjectID   *domain.ProjectID
}

// DashboardStats are the per-owner task counters. Counters are independent:
// a task may contribute to more than one. All are zero when the owner has no tasks.
type DashboardStats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	InProgress   int `json:"inProgress"`
	Todo         int `json:"todo"`
	HighPriority int `json:"highPriority"`
	DueThisWeek  int `json:"dueThisWeek"`
}

// StatusCount is one per-project aggregation bucket. Statuses with zero tasks
// produce no entry.
type StatusCount struct {
	Status domain.Status `json:"status"`
	Count  int           `json:"count"`
}

// UserRepository defines persistence for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}

// ProjectRepository defines persistence for projects.
// Get returns (nil, nil) when no project matches.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id domain.ProjectID) error
}

// TaskRepository defines persistence and aggregation for tasks.
// Get methods return (nil, nil) when no task matches. List results are ordered by
// due date ascending, then priority descending (high before medium before low).
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id domain.TaskID) (*domain.Task, error)
	GetWithRefs(ctx context.Context, id domain.TaskID) (*domain.TaskWithRefs, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.TaskWithRefs, error)
	ListByProject(ctx context.Context, ownerID domain.UserID, projectID domain.ProjectID) ([]*domain.TaskWithRefs, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id domain.TaskID) error

	// DashboardStats computes all six counters in a single pass over the owner's
	// tasks. The due-this-week window [weekStart, weekEnd] is inclusive on both ends.
	DashboardStats(ctx context.Context, ownerID domain.UserID, weekStart, weekEnd time.Time) (*DashboardStats, error)
	// StatusCounts groups the owner's tasks in one project by status.
	StatusCounts(ctx context.Context, ownerID domain.UserID, projectID domain.ProjectID) ([]StatusCount, error)
}

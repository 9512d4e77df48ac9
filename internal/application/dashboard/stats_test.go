package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/application/dashboard"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/infrastructure/persistence/memory"
)

func seedOwner(t *testing.T, store *memory.Store) (domain.UserID, domain.ProjectID) {
	t.Helper()
	ctx := context.Background()
	ownerID := domain.NewUserID(uuid.New())
	require.NoError(t, store.Users().Create(ctx, &domain.User{
		ID: ownerID, Name: "Alice", Email: "alice@example.com", Role: "user",
	}))
	projectID := domain.NewProjectID(uuid.New())
	require.NoError(t, store.Projects().Create(ctx, &domain.Project{
		ID: projectID, Title: "Alpha", OwnerID: ownerID,
	}))
	return ownerID, projectID
}

func seedTask(t *testing.T, store *memory.Store, owner domain.UserID, project domain.ProjectID, status domain.Status, priority domain.Priority, dueDate time.Time) {
	t.Helper()
	require.NoError(t, store.Tasks().Create(context.Background(), &domain.Task{
		ID: domain.NewTaskID(uuid.New()), Title: "t", Status: status,
		Priority: priority, DueDate: dueDate, ProjectID: project, OwnerID: owner,
	}))
}

func TestStatsCounters(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	owner, project := seedOwner(t, store)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// Due within [now, now+7d] and high priority.
	seedTask(t, store, owner, project, domain.StatusTodo, domain.PriorityHigh,
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	// Just beyond now+7d, so outside the week window.
	seedTask(t, store, owner, project, domain.StatusInProgress, domain.PriorityMedium,
		time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC))
	// Overdue tasks do not count toward dueThisWeek.
	seedTask(t, store, owner, project, domain.StatusCompleted, domain.PriorityLow,
		time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))

	stats, err := dashboard.NewStats(store.Tasks()).Execute(ctx, owner, now)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Todo)
	assert.Equal(t, 1, stats.HighPriority)
	assert.Equal(t, 1, stats.DueThisWeek)
	assert.Equal(t, stats.Total, stats.Completed+stats.InProgress+stats.Todo)
}

func TestStatsIgnoresOtherOwners(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	owner, project := seedOwner(t, store)
	other := domain.NewUserID(uuid.New())
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	seedTask(t, store, owner, project, domain.StatusTodo, domain.PriorityLow, now)
	seedTask(t, store, other, project, domain.StatusTodo, domain.PriorityLow, now)

	stats, err := dashboard.NewStats(store.Tasks()).Execute(ctx, owner, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}

func TestStatsZeroFill(t *testing.T) {
	store := memory.NewStore()
	owner, _ := seedOwner(t, store)

	stats, err := dashboard.NewStats(store.Tasks()).Execute(context.Background(), owner, time.Now())
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.DueThisWeek)
}

func TestProjectStats(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	owner, project := seedOwner(t, store)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	seedTask(t, store, owner, project, domain.StatusTodo, domain.PriorityLow, now)
	seedTask(t, store, owner, project, domain.StatusTodo, domain.PriorityLow, now)
	seedTask(t, store, owner, project, domain.StatusCompleted, domain.PriorityLow, now)

	counts, err := dashboard.NewProjectStats(store.Tasks()).Execute(ctx, owner, project)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byStatus := map[domain.Status]int{}
	total := 0
	for _, c := range counts {
		byStatus[c.Status] = c.Count
		total += c.Count
	}
	assert.Equal(t, 2, byStatus[domain.StatusTodo])
	assert.Equal(t, 1, byStatus[domain.StatusCompleted])
	// Absent statuses are omitted rather than reported as zero.
	assert.NotContains(t, byStatus, domain.StatusInProgress)
	assert.Equal(t, 3, total)
}

func TestProjectStatsEmptyProject(t *testing.T) {
	store := memory.NewStore()
	owner, project := seedOwner(t, store)

	counts, err := dashboard.NewProjectStats(store.Tasks()).Execute(context.Background(), owner, project)
	require.NoError(t, err)
	assert.NotNil(t, counts)
	assert.Empty(t, counts)
}

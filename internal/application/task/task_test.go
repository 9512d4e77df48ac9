package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/application/task"
	"github.com/taskhive/taskhive/internal/domain"
	domerrors "github.com/taskhive/taskhive/internal/domain/errors"
	"github.com/taskhive/taskhive/internal/infrastructure/persistence/memory"
)

func seedUser(t *testing.T, store *memory.Store, name, email string) domain.UserID {
	t.Helper()
	id := domain.NewUserID(uuid.New())
	require.NoError(t, store.Users().Create(context.Background(), &domain.User{
		ID: id, Name: name, Email: email, Role: "user",
	}))
	return id
}

func seedProject(t *testing.T, store *memory.Store, owner domain.UserID, title string) domain.ProjectID {
	t.Helper()
	id := domain.NewProjectID(uuid.New())
	require.NoError(t, store.Projects().Create(context.Background(), &domain.Project{
		ID: id, Title: title, Description: "d", OwnerID: owner,
	}))
	return id
}

func due(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestCreateTaskDefaultsAndGuard(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	aliceProject := seedProject(t, store, alice, "Alpha")
	bobProject := seedProject(t, store, bob, "Beta")

	uc := task.NewCreateTask(store.Tasks(), store.Projects())

	created, err := uc.Execute(ctx, task.CreateTaskInput{
		OwnerID:     alice,
		ProjectID:   aliceProject,
		Title:       "Ship it",
		Description: "release checklist",
		DueDate:     due(2024, 6, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, created.Status)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.Equal(t, alice, created.OwnerID)

	// Someone else's project reads as not found, and nothing is created.
	_, err = uc.Execute(ctx, task.CreateTaskInput{
		OwnerID:     alice,
		ProjectID:   bobProject,
		Title:       "Sneaky",
		Description: "d",
		DueDate:     due(2024, 6, 1),
	})
	assert.ErrorIs(t, err, domerrors.ErrNotFound)

	_, err = uc.Execute(ctx, task.CreateTaskInput{
		OwnerID:     alice,
		ProjectID:   domain.NewProjectID(uuid.New()),
		Title:       "Nowhere",
		Description: "d",
		DueDate:     due(2024, 6, 1),
	})
	assert.ErrorIs(t, err, domerrors.ErrNotFound)

	tasks, err := store.Tasks().List(ctx, ports.TaskFilter{OwnerID: alice})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestGetTaskOwnership(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	projectID := seedProject(t, store, alice, "Alpha")

	create := task.NewCreateTask(store.Tasks(), store.Projects())
	created, err := create.Execute(ctx, task.CreateTaskInput{
		OwnerID: alice, ProjectID: projectID,
		Title: "T", Description: "d", DueDate: due(2024, 6, 1),
	})
	require.NoError(t, err)

	get := task.NewGetTask(store.Tasks())
	got, err := get.Execute(ctx, created.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	require.NotNil(t, got.ProjectTitle)
	assert.Equal(t, "Alpha", *got.ProjectTitle)
	assert.Equal(t, "Alice", got.OwnerName)

	_, err = get.Execute(ctx, created.ID, bob)
	assert.ErrorIs(t, err, domerrors.ErrForbidden)

	_, err = get.Execute(ctx, domain.NewTaskID(uuid.New()), alice)
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

// Listing with no filter returns the owner's tasks ordered by due date
// ascending, then priority high before medium before low.
func TestListTasksSortOrder(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "alice@example.com")
	projectID := seedProject(t, store, alice, "Alpha")

	create := task.NewCreateTask(store.Tasks(), store.Projects())
	mk := func(title string, priority domain.Priority, dueDate time.Time) {
		_, err := create.Execute(ctx, task.CreateTaskInput{
			OwnerID: alice, ProjectID: projectID,
			Title: title, Description: "d", Priority: priority, DueDate: dueDate,
		})
		require.NoError(t, err)
	}
	mk("later-high", domain.PriorityHigh, due(2024, 1, 10))
	mk("soon-medium", domain.PriorityMedium, due(2024, 1, 5))
	mk("soon-high", domain.PriorityHigh, due(2024, 1, 5))

	list := task.NewListTasks(store.Tasks())
	tasks, err := list.Execute(ctx, alice, ports.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "soon-high", tasks[0].Title)
	assert.Equal(t, "soon-medium", tasks[1].Title)
	assert.Equal(t, "later-high", tasks[2].Title)
}

func TestListTasksFilters(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	aliceProject := seedProject(t, store, alice, "Alpha")
	bobProject := seedProject(t, store, bob, "Beta")

	create := task.NewCreateTask(store.Tasks(), store.Projects())
	_, err := create.Execute(ctx, task.CreateTaskInput{
		OwnerID: alice, ProjectID: aliceProject,
		Title: "Deploy API", Description: "ship the service",
		Status: domain.StatusInProgress, Priority: domain.PriorityHigh, DueDate: due(2024, 3, 1),
	})
	require.NoError(t, err)
	_, err = create.Execute(ctx, task.CreateTaskInput{
		OwnerID: alice, ProjectID: aliceProject,
		Title: "Write docs", Description: "user guide", DueDate: due(2024, 5, 1),
	})
	require.NoError(t, err)
	_, err = create.Execute(ctx, task.CreateTaskInput{
		OwnerID: bob, ProjectID: bobProject,
		Title: "Deploy API", Description: "bob's copy", DueDate: due(2024, 3, 1),
	})
	require.NoError(t, err)

	list := task.NewListTasks(store.Tasks())

	// No filter: exactly the caller's tasks, never another user's.
	all, err := list.Execute(ctx, alice, ports.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	status := domain.StatusInProgress
	byStatus, err := list.Execute(ctx, alice, ports.TaskFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Deploy API", byStatus[0].Title)

	// Search is case-insensitive over title or description.
	bySearch, err := list.Execute(ctx, alice, ports.TaskFilter{Search: "GUIDE"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Write docs", bySearch[0].Title)

	// Due range bounds are inclusive.
	fromMar := due(2024, 3, 1)
	toMay := due(2024, 5, 1)
	byRange, err := list.Execute(ctx, alice, ports.TaskFilter{DueAfter: &fromMar, DueBefore: &toMay})
	require.NoError(t, err)
	assert.Len(t, byRange, 2)

	afterMar := due(2024, 3, 2)
	byRange, err = list.Execute(ctx, alice, ports.TaskFilter{DueAfter: &afterMar})
	require.NoError(t, err)
	require.Len(t, byRange, 1)
	assert.Equal(t, "Write docs", byRange[0].Title)
}

func TestUpdateTaskPatchMerge(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	first := seedProject(t, store, alice, "Alpha")
	second := seedProject(t, store, alice, "Gamma")
	bobProject := seedProject(t, store, bob, "Beta")

	create := task.NewCreateTask(store.Tasks(), store.Projects())
	created, err := create.Execute(ctx, task.CreateTaskInput{
		OwnerID: alice, ProjectID: first,
		Title: "Original", Description: "keep me", DueDate: due(2024, 6, 1),
	})
	require.NoError(t, err)

	update := task.NewUpdateTask(store.Tasks(), store.Projects())

	status := domain.StatusCompleted
	updated, err := update.Execute(ctx, created.ID, alice, ports.TaskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, first, updated.ProjectID)

	// Moving to another owned project is allowed.
	updated, err = update.Execute(ctx, created.ID, alice, ports.TaskPatch{ProjectID: &second})
	require.NoError(t, err)
	assert.Equal(t, second, updated.ProjectID)

	// Moving to a foreign project fails as not found and changes nothing.
	_, err = update.Execute(ctx, created.ID, alice, ports.TaskPatch{ProjectID: &bobProject})
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
	current, err := store.Tasks().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, second, current.ProjectID)

	// Only the owner can update at all.
	_, err = update.Execute(ctx, created.ID, bob, ports.TaskPatch{Status: &status})
	assert.ErrorIs(t, err, domerrors.ErrForbidden)
}

func TestDeleteTask(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	projectID := seedProject(t, store, alice, "Alpha")

	create := task.NewCreateTask(store.Tasks(), store.Projects())
	created, err := create.Execute(ctx, task.CreateTaskInput{
		OwnerID: alice, ProjectID: projectID,
		Title: "T", Description: "d", DueDate: due(2024, 6, 1),
	})
	require.NoError(t, err)

	del := task.NewDeleteTask(store.Tasks())
	assert.ErrorIs(t, del.Execute(ctx, created.ID, bob), domerrors.ErrForbidden)
	require.NoError(t, del.Execute(ctx, created.ID, alice))
	assert.ErrorIs(t, del.Execute(ctx, created.ID, alice), domerrors.ErrNotFound)
}

func TestListProjectTasksGuardsProject(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	aliceProject := seedProject(t, store, alice, "Alpha")

	create := task.NewCreateTask(store.Tasks(), store.Projects())
	_, err := create.Execute(ctx, task.CreateTaskInput{
		OwnerID: alice, ProjectID: aliceProject,
		Title: "T", Description: "d", DueDate: due(2024, 6, 1),
	})
	require.NoError(t, err)

	list := task.NewListProjectTasks(store.Tasks(), store.Projects())
	tasks, err := list.Execute(ctx, aliceProject, alice)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	// A foreign project id reads as not found, not as an empty list.
	_, err = list.Execute(ctx, aliceProject, bob)
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

// Deleting a project leaves its tasks queryable by id with the project join
// gone.
func TestOrphanedTasksSurviveProjectDelete(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "alice@example.com")
	projectID := seedProject(t, store, alice, "Alpha")

	create := task.NewCreateTask(store.Tasks(), store.Projects())
	created, err := create.Execute(ctx, task.CreateTaskInput{
		OwnerID: alice, ProjectID: projectID,
		Title: "Survivor", Description: "d", DueDate: due(2024, 6, 1),
	})
	require.NoError(t, err)

	require.NoError(t, store.Projects().Delete(ctx, projectID))

	get := task.NewGetTask(store.Tasks())
	got, err := get.Execute(ctx, created.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, "Survivor", got.Title)
	assert.Nil(t, got.ProjectTitle)
}

package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

type TaskRepository struct {
	store *Store
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *TaskRepository) GetByID(_ context.Context, id domain.TaskID) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if t, ok := r.store.tasks[id]; ok {
		return cloneTask(t), nil
	}
	return nil, nil
}

func (r *TaskRepository) GetWithRefs(_ context.Context, id domain.TaskID) (*domain.TaskWithRefs, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	t, ok := r.store.tasks[id]
	if !ok {
		return nil, nil
	}
	return r.withRefs(t), nil
}

func (r *TaskRepository) List(_ context.Context, filter ports.TaskFilter) ([]*domain.TaskWithRefs, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	tasks := []*domain.TaskWithRefs{}
	for _, t := range r.store.tasks {
		if matches(t, filter) {
			tasks = append(tasks, r.withRefs(t))
		}
	}
	sortTasks(tasks)
	return tasks, nil
}

func (r *TaskRepository) ListByProject(_ context.Context, ownerID domain.UserID, projectID domain.ProjectID) ([]*domain.TaskWithRefs, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	tasks := []*domain.TaskWithRefs{}
	for _, t := range r.store.tasks {
		if t.OwnerID == ownerID && t.ProjectID == projectID {
			tasks = append(tasks, r.withRefs(t))
		}
	}
	sortTasks(tasks)
	return tasks, nil
}

func (r *TaskRepository) Update(_ context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, id domain.TaskID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.tasks, id)
	return nil
}

// DashboardStats walks the owner's tasks once; every counter is independent and
// a task may contribute to several.
func (r *TaskRepository) DashboardStats(_ context.Context, ownerID domain.UserID, weekStart, weekEnd time.Time) (*ports.DashboardStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var s ports.DashboardStats
	for _, t := range r.store.tasks {
		if t.OwnerID != ownerID {
			continue
		}
		s.Total++
		switch t.Status {
		case domain.StatusCompleted:
			s.Completed++
		case domain.StatusInProgress:
			s.InProgress++
		case domain.StatusTodo:
			s.Todo++
		}
		if t.Priority == domain.PriorityHigh {
			s.HighPriority++
		}
		if !t.DueDate.Before(weekStart) && !t.DueDate.After(weekEnd) {
			s.DueThisWeek++
		}
	}
	return &s, nil
}

func (r *TaskRepository) StatusCounts(_ context.Context, ownerID domain.UserID, projectID domain.ProjectID) ([]ports.StatusCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	byStatus := map[domain.Status]int{}
	for _, t := range r.store.tasks {
		if t.OwnerID == ownerID && t.ProjectID == projectID {
			byStatus[t.Status]++
		}
	}
	counts := []ports.StatusCount{}
	for status, n := range byStatus {
		counts = append(counts, ports.StatusCount{Status: status, Count: n})
	}
	return counts, nil
}

// withRefs joins display fields; a deleted project leaves ProjectTitle nil.
// Caller must hold the store lock.
func (r *TaskRepository) withRefs(t *domain.Task) *domain.TaskWithRefs {
	ref := &domain.TaskWithRefs{Task: *cloneTask(t)}
	if p, ok := r.store.projects[t.ProjectID]; ok {
		title := p.Title
		ref.ProjectTitle = &title
	}
	if u, ok := r.store.users[t.OwnerID]; ok {
		ref.OwnerName = u.Name
		ref.OwnerEmail = u.Email
	}
	return ref
}

func matches(t *domain.Task, f ports.TaskFilter) bool {
	if t.OwnerID != f.OwnerID {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.ProjectID != nil && t.ProjectID != *f.ProjectID {
		return false
	}
	if f.DueAfter != nil && t.DueDate.Before(*f.DueAfter) {
		return false
	}
	if f.DueBefore != nil && t.DueDate.After(*f.DueBefore) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	return true
}

// sortTasks orders by due date ascending, then priority descending.
func sortTasks(tasks []*domain.TaskWithRefs) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
	})
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

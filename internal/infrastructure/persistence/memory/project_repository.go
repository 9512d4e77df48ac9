package memory

import (
	"context"
	"sort"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

type ProjectRepository struct {
	store *Store
}

func (r *ProjectRepository) Create(_ context.Context, project *domain.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.projects[project.ID] = cloneProject(project)
	return nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id domain.ProjectID) (*domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if p, ok := r.store.projects[id]; ok {
		return cloneProject(p), nil
	}
	return nil, nil
}

func (r *ProjectRepository) ListByOwner(_ context.Context, ownerID domain.UserID) ([]*domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	projects := []*domain.Project{}
	for _, p := range r.store.projects {
		if p.OwnerID == ownerID {
			projects = append(projects, cloneProject(p))
		}
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (r *ProjectRepository) Update(_ context.Context, project *domain.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.projects[project.ID] = cloneProject(project)
	return nil
}

// Delete removes the project only. Tasks that reference it stay behind,
// matching the store-level behavior of the SQL schema.
func (r *ProjectRepository) Delete(_ context.Context, id domain.ProjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.projects, id)
	return nil
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

// Package memory provides in-memory implementations of the persistence ports.
// They mirror the postgres repositories' query semantics (owner scoping,
// filtering, ordering, aggregation) and back the application and handler test
// suites, where a live database is not available.
package memory

import (
	"sync"

	"github.com/taskhive/taskhive/internal/domain"
)

// Store is the shared backing state for the in-memory repositories, so that
// task listings can join project and user display fields the way the SQL
// repositories do.
type Store struct {
	mu       sync.RWMutex
	users    map[domain.UserID]*domain.User
	projects map[domain.ProjectID]*domain.Project
	tasks    map[domain.TaskID]*domain.Task
}

func NewStore() *Store {
	return &Store{
		users:    make(map[domain.UserID]*domain.User),
		projects: make(map[domain.ProjectID]*domain.Project),
		tasks:    make(map[domain.TaskID]*domain.Task),
	}
}

func (s *Store) Users() *UserRepository       { return &UserRepository{store: s} }
func (s *Store) Projects() *ProjectRepository { return &ProjectRepository{store: s} }
func (s *Store) Tasks() *TaskRepository       { return &TaskRepository{store: s} }

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func cloneProject(p *domain.Project) *domain.Project {
	c := *p
	return &c
}

func cloneTask(t *domain.Task) *domain.Task {
	c := *t
	return &c
}

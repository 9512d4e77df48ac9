package memory

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if u, ok := r.store.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)

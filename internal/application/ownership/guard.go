// Package ownership implements the authorization check applied before every
// read, update or delete of an owned resource.
package ownership

import (
	"github.com/taskhive/taskhive/internal/domain"
	domerrors "github.com/taskhive/taskhive/internal/domain/errors"
)

// CheckProject authorizes direct access to a project:
// absent -> ErrNotFound, owned by someone else -> ErrForbidden.
func CheckProject(p *domain.Project, requester domain.UserID) error {
	if p == nil {
		return domerrors.ErrNotFound
	}
	if p.OwnerID != requester {
		return domerrors.ErrForbidden
	}
	return nil
}

// CheckTask authorizes direct access to a task:
// absent -> ErrNotFound, owned by someone else -> ErrForbidden.
func CheckTask(t *domain.Task, requester domain.UserID) error {
	if t == nil {
		return domerrors.ErrNotFound
	}
	if t.OwnerID != requester {
		return domerrors.ErrForbidden
	}
	return nil
}

// CheckProjectRef authorizes a project referenced from a task write. Both failure
// modes collapse to ErrNotFound so the response never reveals whether another
// user's project exists.
func CheckProjectRef(p *domain.Project, requester domain.UserID) error {
	if p == nil || p.OwnerID != requester {
		return domerrors.ErrNotFound
	}
	return nil
}

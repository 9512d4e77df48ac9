package ownership

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taskhive/taskhive/internal/domain"
	domerrors "github.com/taskhive/taskhive/internal/domain/errors"
)

func TestCheckProject(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	stranger := domain.NewUserID(uuid.New())
	project := &domain.Project{
		ID:      domain.NewProjectID(uuid.New()),
		Title:   "Roadmap",
		OwnerID: owner,
	}

	tests := []struct {
		name      string
		project   *domain.Project
		requester domain.UserID
		wantErr   error
	}{
		{"owner passes", project, owner, nil},
		{"missing project is not found", nil, owner, domerrors.ErrNotFound},
		{"foreign project is forbidden", project, stranger, domerrors.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckProject(tt.project, tt.requester)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckTask(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	stranger := domain.NewUserID(uuid.New())
	task := &domain.Task{
		ID:      domain.NewTaskID(uuid.New()),
		OwnerID: owner,
		DueDate: time.Now(),
	}

	assert.NoError(t, CheckTask(task, owner))
	assert.ErrorIs(t, CheckTask(nil, owner), domerrors.ErrNotFound)
	assert.ErrorIs(t, CheckTask(task, stranger), domerrors.ErrForbidden)
}

// A referenced project that exists but belongs to someone else must look
// exactly like a missing one.
func TestCheckProjectRefCollapsesForbidden(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	stranger := domain.NewUserID(uuid.New())
	project := &domain.Project{ID: domain.NewProjectID(uuid.New()), OwnerID: owner}

	assert.NoError(t, CheckProjectRef(project, owner))
	assert.ErrorIs(t, CheckProjectRef(nil, owner), domerrors.ErrNotFound)
	assert.ErrorIs(t, CheckProjectRef(project, stranger), domerrors.ErrNotFound)
	assert.NotErrorIs(t, CheckProjectRef(project, stranger), domerrors.ErrForbidden)
}

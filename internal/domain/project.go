package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID is a value object for project identity.
type ProjectID struct{ uuid.UUID }

// NewProjectID creates a new ProjectID from uuid.
func NewProjectID(id uuid.UUID) ProjectID { return ProjectID{UUID: id} }

// String returns the canonical string form.
func (p ProjectID) String() string { return p.UUID.String() }

// Project groups tasks under a single owner. OwnerID never changes after creation.
type Project struct {
	ID          ProjectID
	Title       string
	Description string
	OwnerID     UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

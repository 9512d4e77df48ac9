package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

const (
	createProjectSQL = `INSERT INTO projects (id, title, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	getProjectByIDSQL = `SELECT id, title, description, owner_id, created_at, updated_at
		FROM projects WHERE id = $1`
	listProjectsByOwnerSQL = `SELECT id, title, description, owner_id, created_at, updated_at
		FROM projects WHERE owner_id = $1 ORDER BY created_at DESC`
	updateProjectSQL = `UPDATE projects SET title = $2, description = $3, updated_at = $4 WHERE id = $1`
	deleteProjectSQL = `DELETE FROM projects WHERE id = $1`
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	_, err := r.pool.Exec(ctx, createProjectSQL,
		project.ID.UUID, project.Title, project.Description, project.OwnerID.UUID,
		project.CreatedAt, project.UpdatedAt)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return scanProject(r.pool.QueryRow(ctx, getProjectByIDSQL, id.UUID))
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*domain.Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx, listProjectsByOwnerSQL, ownerID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	projects := []*domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	_, err := r.pool.Exec(ctx, updateProjectSQL,
		project.ID.UUID, project.Title, project.Description, project.UpdatedAt)
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id domain.ProjectID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	_, err := r.pool.Exec(ctx, deleteProjectSQL, id.UUID)
	return err
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		id      uuid.UUID
		ownerID uuid.UUID
		p       domain.Project
	)
	err := row.Scan(&id, &p.Title, &p.Description, &ownerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.ID = domain.NewProjectID(id)
	p.OwnerID = domain.NewUserID(ownerID)
	return &p, nil
}

// Ensure ProjectRepository implements ports.ProjectRepository.
var _ ports.ProjectRepository = (*ProjectRepository)(nil)

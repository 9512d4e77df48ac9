package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

const (
	createTaskSQL = `INSERT INTO tasks (id, title, description, status, priority, due_date,
		project_id, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	getTaskByIDSQL = `SELECT id, title, description, status, priority, due_date,
		project_id, owner_id, created_at, updated_at FROM tasks WHERE id = $1`
	getTaskWithRefsSQL = `SELECT ` + taskSelectColumns + ` ` + taskFromJoins + ` WHERE t.id = $1`
	listTasksByProjectSQL = `SELECT ` + taskSelectColumns + ` ` + taskFromJoins + `
		WHERE t.owner_id = $1 AND t.project_id = $2 ` + taskOrderBy
	updateTaskSQL = `UPDATE tasks SET title = $2, description = $3, status = $4, priority = $5,
		due_date = $6, project_id = $7, updated_at = $8 WHERE id = $1`
	deleteTaskSQL = `DELETE FROM tasks WHERE id = $1`

	// All six dashboard counters come back from one scan of the owner's tasks.
	dashboardStatsSQL = `SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'completed'),
		COUNT(*) FILTER (WHERE status = 'in-progress'),
		COUNT(*) FILTER (WHERE status = 'todo'),
		COUNT(*) FILTER (WHERE priority = 'high'),
		COUNT(*) FILTER (WHERE due_date >= $2 AND due_date <= $3)
		FROM tasks WHERE owner_id = $1`
	statusCountsSQL = `SELECT status, COUNT(*) FROM tasks
		WHERE owner_id = $1 AND project_id = $2 GROUP BY status`
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	_, err := r.pool.Exec(ctx, createTaskSQL,
		task.ID.UUID, task.Title, task.Description, string(task.Status), string(task.Priority),
		task.DueDate, task.ProjectID.UUID, task.OwnerID.UUID, task.CreatedAt, task.UpdatedAt)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	var (
		taskID    uuid.UUID
		projectID uuid.UUID
		ownerID   uuid.UUID
		status    string
		priority  string
		t         domain.Task
	)
	err := r.pool.QueryRow(ctx, getTaskByIDSQL, id.UUID).Scan(
		&taskID, &t.Title, &t.Description, &status, &priority, &t.DueDate,
		&projectID, &ownerID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.ID = domain.NewTaskID(taskID)
	t.Status = domain.Status(status)
	t.Priority = domain.Priority(priority)
	t.ProjectID = domain.NewProjectID(projectID)
	t.OwnerID = domain.NewUserID(ownerID)
	return &t, nil
}

func (r *TaskRepository) GetWithRefs(ctx context.Context, id domain.TaskID) (*domain.TaskWithRefs, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	task, err := scanTaskWithRefs(r.pool.QueryRow(ctx, getTaskWithRefsSQL, id.UUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter ports.TaskFilter) ([]*domain.TaskWithRefs, error) {
	query, args := buildTaskListQuery(filter)
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasksWithRefs(rows)
}

func (r *TaskRepository) ListByProject(ctx context.Context, ownerID domain.UserID, projectID domain.ProjectID) ([]*domain.TaskWithRefs, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx, listTasksByProjectSQL, ownerID.UUID, projectID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasksWithRefs(rows)
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	_, err := r.pool.Exec(ctx, updateTaskSQL,
		task.ID.UUID, task.Title, task.Description, string(task.Status), string(task.Priority),
		task.DueDate, task.ProjectID.UUID, task.UpdatedAt)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id domain.TaskID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	_, err := r.pool.Exec(ctx, deleteTaskSQL, id.UUID)
	return err
}

func (r *TaskRepository) DashboardStats(ctx context.Context, ownerID domain.UserID, weekStart, weekEnd time.Time) (*ports.DashboardStats, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	var s ports.DashboardStats
	err := r.pool.QueryRow(ctx, dashboardStatsSQL, ownerID.UUID, weekStart, weekEnd).Scan(
		&s.Total, &s.Completed, &s.InProgress, &s.Todo, &s.HighPriority, &s.DueThisWeek)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *TaskRepository) StatusCounts(ctx context.Context, ownerID domain.UserID, projectID domain.ProjectID) ([]ports.StatusCount, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx, statusCountsSQL, ownerID.UUID, projectID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := []ports.StatusCount{}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts = append(counts, ports.StatusCount{Status: domain.Status(status), Count: count})
	}
	return counts, rows.Err()
}

func scanTaskWithRefs(row pgx.Row) (*domain.TaskWithRefs, error) {
	var (
		taskID    uuid.UUID
		projectID uuid.UUID
		ownerID   uuid.UUID
		status    string
		priority  string
		t         domain.TaskWithRefs
	)
	err := row.Scan(
		&taskID, &t.Title, &t.Description, &status, &priority, &t.DueDate,
		&projectID, &ownerID, &t.CreatedAt, &t.UpdatedAt,
		&t.ProjectTitle, &t.OwnerName, &t.OwnerEmail)
	if err != nil {
		return nil, err
	}
	t.ID = domain.NewTaskID(taskID)
	t.Status = domain.Status(status)
	t.Priority = domain.Priority(priority)
	t.ProjectID = domain.NewProjectID(projectID)
	t.OwnerID = domain.NewUserID(ownerID)
	return &t, nil
}

func collectTasksWithRefs(rows pgx.Rows) ([]*domain.TaskWithRefs, error) {
	tasks := []*domain.TaskWithRefs{}
	for rows.Next() {
		t, err := scanTaskWithRefs(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Ensure TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)

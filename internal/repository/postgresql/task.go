package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `
	id, title, description, assigned_to, assigned_by, status, pause_reason,
	notes, is_approved, approved_by, approved_at, created_at, updated_at
`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy,
		&t.Status, &t.PauseReason, &t.Notes, &t.IsApproved,
		&t.ApprovedBy, &t.ApprovedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Notes == nil {
		t.Notes = []task.Note{}
	}

	query := `
		INSERT INTO tasks (id, title, description, assigned_to, assigned_by, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.AssignedTo, t.AssignedBy, t.Status, t.Notes,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to, t.assigned_by, t.status,
		       t.pause_reason, t.notes, t.is_approved, t.approved_by, t.approved_at,
		       t.created_at, t.updated_at,
		       ua.name, ua.email,
		       ub.name, ub.email,
		       up.name, up.email
		FROM tasks t
		JOIN users ua ON ua.id = t.assigned_to
		JOIN users ub ON ub.id = t.assigned_by
		LEFT JOIN users up ON up.id = t.approved_by
		WHERE t.id = $1
	`

	t, err := scanTaskWithUsers(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to, t.assigned_by, t.status,
		       t.pause_reason, t.notes, t.is_approved, t.approved_by, t.approved_at,
		       t.created_at, t.updated_at,
		       ua.name, ua.email,
		       ub.name, ub.email,
		       up.name, up.email
		FROM tasks t
		JOIN users ua ON ua.id = t.assigned_to
		JOIN users ub ON ub.id = t.assigned_by
		LEFT JOIN users up ON up.id = t.approved_by
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTaskWithUsers(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// UpdateStatus implements task.TaskRepository.
// COALESCE keeps an existing pause reason when none is supplied; a
// reason written while paused stays on the record after leaving pause.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id string, status task.Status, pauseReason *string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = $2, pause_reason = COALESCE($3, pause_reason), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taskColumns

	t, err := scanTask(q.QueryRow(ctx, query, id, status, pauseReason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}

	return t, nil
}

// AppendNote implements task.TaskRepository.
// The JSONB concat appends in place, so insertion order is preserved
// and no existing entry is touched.
func (r *taskRepositoryImpl) AppendNote(ctx context.Context, id string, note task.Note) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET notes = notes || $2::jsonb, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taskColumns

	t, err := scanTask(q.QueryRow(ctx, query, id, note))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to append note: %w", err)
	}

	return t, nil
}

// Approve implements task.TaskRepository.
// The guard makes the completed-check and the write one atomic
// statement, so a concurrent status change cannot slip in between.
func (r *taskRepositoryImpl) Approve(ctx context.Context, id string, approverID string, at time.Time) (task.Task, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = $4, is_approved = TRUE, approved_by = $2, approved_at = $3, updated_at = NOW()
		WHERE id = $1 AND status = $5 AND assigned_to <> $2
		RETURNING ` + taskColumns

	t, err := scanTask(q.QueryRow(ctx, query, id, approverID, at, task.StatusApproved, task.StatusCompleted))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, false, nil
		}
		return task.Task{}, false, fmt.Errorf("failed to approve task: %w", err)
	}

	return t, true, nil
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListFinishedForUpdate implements task.TaskRepository.
func (r *taskRepositoryImpl) ListFinishedForUpdate(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE status IN ($1, $2)
		FOR UPDATE
	`

	rows, err := q.Query(ctx, query, task.StatusCompleted, task.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list finished tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// DeleteByIDs implements task.TaskRepository.
func (r *taskRepositoryImpl) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tasks: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func scanTaskWithUsers(row pgx.Row) (task.Task, error) {
	var t task.Task
	var assignedToName, assignedToEmail string
	var assignedByName, assignedByEmail string
	var approvedByName, approvedByEmail *string

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy,
		&t.Status, &t.PauseReason, &t.Notes, &t.IsApproved,
		&t.ApprovedBy, &t.ApprovedAt, &t.CreatedAt, &t.UpdatedAt,
		&assignedToName, &assignedToEmail,
		&assignedByName, &assignedByEmail,
		&approvedByName, &approvedByEmail,
	)
	if err != nil {
		return task.Task{}, err
	}

	t.AssignedToUser = &user.Identity{ID: t.AssignedTo, Name: assignedToName, Email: assignedToEmail}
	t.AssignedByUser = &user.Identity{ID: t.AssignedBy, Name: assignedByName, Email: assignedByEmail}
	if t.ApprovedBy != nil && approvedByName != nil && approvedByEmail != nil {
		t.ApprovedByUser = &user.Identity{ID: *t.ApprovedBy, Name: *approvedByName, Email: *approvedByEmail}
	}

	return t, nil
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/taskarchive"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/workday"
)

type taskArchiveRepositoryImpl struct {
	db *database.DB
}

func NewTaskArchiveRepository(db *database.DB) taskarchive.TaskArchiveRepository {
	return &taskArchiveRepositoryImpl{db: db}
}

// InsertMany implements taskarchive.TaskArchiveRepository.
func (r *taskArchiveRepositoryImpl) InsertMany(ctx context.Context, archives []taskarchive.TaskArchive) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO task_archives (
			original_task_id, title, description, assigned_to, assigned_by,
			status, pause_reason, notes, is_approved, approved_by, approved_at,
			task_created_at, archived_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	for _, a := range archives {
		if a.Notes == nil {
			a.Notes = []task.Note{}
		}
		_, err := q.Exec(ctx, query,
			a.OriginalTaskID, a.Title, a.Description, a.AssignedTo, a.AssignedBy,
			a.Status, a.PauseReason, a.Notes, a.IsApproved, a.ApprovedBy, a.ApprovedAt,
			a.TaskCreatedAt, a.ArchivedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert archive for task %s: %w", a.OriginalTaskID, err)
		}
	}

	return nil
}

const archiveSelect = `
	SELECT ar.id, ar.original_task_id, ar.title, ar.description,
	       ar.assigned_to, ar.assigned_by, ar.status, ar.pause_reason,
	       ar.notes, ar.is_approved, ar.approved_by, ar.approved_at,
	       ar.task_created_at, ar.archived_at,
	       ua.name, ua.email,
	       ub.name, ub.email,
	       up.name, up.email
	FROM task_archives ar
	LEFT JOIN users ua ON ua.id = ar.assigned_to
	LEFT JOIN users ub ON ub.id = ar.assigned_by
	LEFT JOIN users up ON up.id = ar.approved_by
`

// List implements taskarchive.TaskArchiveRepository.
func (r *taskArchiveRepositoryImpl) List(ctx context.Context) ([]taskarchive.TaskArchive, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, archiveSelect+` ORDER BY ar.archived_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives: %w", err)
	}
	defer rows.Close()

	return collectArchives(rows)
}

// ListByDay implements taskarchive.TaskArchiveRepository.
func (r *taskArchiveRepositoryImpl) ListByDay(ctx context.Context, day workday.Day) ([]taskarchive.TaskArchive, error) {
	q := GetQuerier(ctx, r.db)

	start, end, err := day.Bounds()
	if err != nil {
		return nil, fmt.Errorf("invalid day %q: %w", day, err)
	}

	rows, err := q.Query(ctx, archiveSelect+`
		WHERE ar.archived_at >= $1 AND ar.archived_at < $2
		ORDER BY ar.archived_at DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives by day: %w", err)
	}
	defer rows.Close()

	return collectArchives(rows)
}

func collectArchives(rows pgx.Rows) ([]taskarchive.TaskArchive, error) {
	var result []taskarchive.TaskArchive
	for rows.Next() {
		var a taskarchive.TaskArchive
		var assignedToName, assignedToEmail *string
		var assignedByName, assignedByEmail *string
		var approvedByName, approvedByEmail *string

		err := rows.Scan(
			&a.ID, &a.OriginalTaskID, &a.Title, &a.Description,
			&a.AssignedTo, &a.AssignedBy, &a.Status, &a.PauseReason,
			&a.Notes, &a.IsApproved, &a.ApprovedBy, &a.ApprovedAt,
			&a.TaskCreatedAt, &a.ArchivedAt,
			&assignedToName, &assignedToEmail,
			&assignedByName, &assignedByEmail,
			&approvedByName, &approvedByEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archive: %w", err)
		}

		a.AssignedToUser = identityOrNil(a.AssignedTo, assignedToName, assignedToEmail)
		a.AssignedByUser = identityOrNil(a.AssignedBy, assignedByName, assignedByEmail)
		if a.ApprovedBy != nil {
			a.ApprovedByUser = identityOrNil(*a.ApprovedBy, approvedByName, approvedByEmail)
		}

		result = append(result, a)
	}

	return result, rows.Err()
}

func identityOrNil(id string, name, email *string) *user.Identity {
	if name == nil || email == nil {
		return nil
	}
	return &user.Identity{ID: id, Name: *name, Email: *email}
}

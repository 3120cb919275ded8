package taskarchive

import (
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
)

// TaskArchive is a write-once snapshot of a task at the moment of
// archival. It is never mutated after insertion.
type TaskArchive struct {
	ID             string
	OriginalTaskID string
	Title          string
	Description    string
	AssignedTo     string
	AssignedBy     string
	Status         task.Status
	PauseReason    *string
	Notes          []task.Note
	IsApproved     bool
	ApprovedBy     *string
	ApprovedAt     *time.Time
	TaskCreatedAt  time.Time
	ArchivedAt     time.Time

	// Joined from users; nil when the user has since been deleted
	AssignedToUser *user.Identity
	AssignedByUser *user.Identity
	ApprovedByUser *user.Identity
}

// Snapshot copies every task field verbatim into a new archive record.
func Snapshot(t task.Task, archivedAt time.Time) TaskArchive {
	return TaskArchive{
		OriginalTaskID: t.ID,
		Title:          t.Title,
		Description:    t.Description,
		AssignedTo:     t.AssignedTo,
		AssignedBy:     t.AssignedBy,
		Status:         t.Status,
		PauseReason:    t.PauseReason,
		Notes:          t.Notes,
		IsApproved:     t.IsApproved,
		ApprovedBy:     t.ApprovedBy,
		ApprovedAt:     t.ApprovedAt,
		TaskCreatedAt:  t.CreatedAt,
		ArchivedAt:     archivedAt,
	}
}

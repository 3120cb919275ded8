package task

import (
	"context"
	"time"
)

// TaskRepository defines data access methods for live task records.
// Read methods join user identities for the list views.
type TaskRepository interface {
	// Create inserts a new task
	Create(ctx context.Context, t Task) (Task, error)

	// GetByID retrieves one task; ErrTaskNotFound when absent
	GetByID(ctx context.Context, id string) (Task, error)

	// List retrieves every task, newest first
	List(ctx context.Context) ([]Task, error)

	// UpdateStatus writes the new status and, when given, the pause reason.
	// An existing pause reason is left in place when reason is nil.
	UpdateStatus(ctx context.Context, id string, status Status, pauseReason *string) (Task, error)

	// AppendNote appends one note to the task's note array
	AppendNote(ctx context.Context, id string, note Note) (Task, error)

	// Approve marks the task approved by the given user. The write is
	// conditional on the task still being completed and not assigned to
	// the approver; false means the guard did not match.
	Approve(ctx context.Context, id string, approverID string, at time.Time) (Task, bool, error)

	// Delete hard-deletes a task; false when it did not exist
	Delete(ctx context.Context, id string) (bool, error)

	// ListFinishedForUpdate retrieves and row-locks every task whose
	// status is completed or approved. Must run inside a transaction.
	ListFinishedForUpdate(ctx context.Context) ([]Task, error)

	// DeleteByIDs removes the given tasks and returns how many went away
	DeleteByIDs(ctx context.Context, ids []string) (int, error)
}

package task

import (
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusStarted   Status = "started"
	StatusWorking   Status = "working"
	StatusPause     Status = "pause"
	StatusCompleted Status = "completed"
	StatusApproved  Status = "approved"
)

// Statuses lists every valid status value. Any of them may be written
// by the status-update operation; only approval is guarded.
func Statuses() []string {
	return []string{
		string(StatusPending),
		string(StatusStarted),
		string(StatusWorking),
		string(StatusPause),
		string(StatusCompleted),
		string(StatusApproved),
	}
}

// Finished reports whether the task is eligible for archival.
func (s Status) Finished() bool {
	return s == StatusCompleted || s == StatusApproved
}

// Note is one entry in a task's append-only progress log. Notes are
// never edited, removed, or reordered.
type Note struct {
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

type Task struct {
	ID          string
	Title       string
	Description string
	AssignedTo  string
	AssignedBy  string
	Status      Status
	PauseReason *string
	Notes       []Note
	IsApproved  bool
	ApprovedBy  *string
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined from users
	AssignedToUser *user.Identity
	AssignedByUser *user.Identity
	ApprovedByUser *user.Identity
}

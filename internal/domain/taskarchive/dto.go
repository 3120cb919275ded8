package taskarchive

import (
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
)

type ArchiveResponse struct {
	ID             string         `json:"id"`
	OriginalTaskID string         `json:"original_task_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Status         string         `json:"status"`
	PauseReason    *string        `json:"pause_reason,omitempty"`
	Notes          []task.Note    `json:"notes"`
	IsApproved     bool           `json:"is_approved"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	AssignedTo     *user.Identity `json:"assigned_to,omitempty"`
	AssignedBy     *user.Identity `json:"assigned_by,omitempty"`
	ApprovedBy     *user.Identity `json:"approved_by,omitempty"`
	TaskCreatedAt  time.Time      `json:"task_created_at"`
	ArchivedAt     time.Time      `json:"archived_at"`
}

type ArchiveResult struct {
	ArchivedCount int `json:"archived_count"`
}

// GroupedArchivesResponse groups snapshots by the IST calendar day they
// were archived on.
type GroupedArchivesResponse struct {
	Archives      map[string][]ArchiveResponse `json:"archives"`
	TotalArchives int                          `json:"total_archives"`
}

func ToResponse(a TaskArchive) ArchiveResponse {
	notes := a.Notes
	if notes == nil {
		notes = []task.Note{}
	}
	return ArchiveResponse{
		ID:             a.ID,
		OriginalTaskID: a.OriginalTaskID,
		Title:          a.Title,
		Description:    a.Description,
		Status:         string(a.Status),
		PauseReason:    a.PauseReason,
		Notes:          notes,
		IsApproved:     a.IsApproved,
		ApprovedAt:     a.ApprovedAt,
		AssignedTo:     a.AssignedToUser,
		AssignedBy:     a.AssignedByUser,
		ApprovedBy:     a.ApprovedByUser,
		TaskCreatedAt:  a.TaskCreatedAt,
		ArchivedAt:     a.ArchivedAt,
	}
}

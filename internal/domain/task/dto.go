package task

import (
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/validator"
)

// ========================================
// TASK DTOs
// ========================================

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to is required",
		})
	} else if !validator.IsValidUUID(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to must be a valid user id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status      string  `json:"status"`
	PauseReason *string `json:"pause_reason,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, started, working, pause, completed, approved",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddNoteRequest struct {
	Content string `json:"content"`
}

func (r *AddNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "note content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	PauseReason *string        `json:"pause_reason,omitempty"`
	Notes       []Note         `json:"notes"`
	IsApproved  bool           `json:"is_approved"`
	ApprovedAt  *time.Time     `json:"approved_at,omitempty"`
	AssignedTo  *user.Identity `json:"assigned_to,omitempty"`
	AssignedBy  *user.Identity `json:"assigned_by,omitempty"`
	ApprovedBy  *user.Identity `json:"approved_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func ToResponse(t Task) TaskResponse {
	notes := t.Notes
	if notes == nil {
		notes = []Note{}
	}
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		PauseReason: t.PauseReason,
		Notes:       notes,
		IsApproved:  t.IsApproved,
		ApprovedAt:  t.ApprovedAt,
		AssignedTo:  t.AssignedToUser,
		AssignedBy:  t.AssignedByUser,
		ApprovedBy:  t.ApprovedByUser,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

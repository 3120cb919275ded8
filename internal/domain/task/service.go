package task

import "context"

// TaskService defines business logic for the task lifecycle. The acting
// user's ID is always an explicit parameter.
type TaskService interface {
	// Create makes a new pending task assigned by creatorID
	Create(ctx context.Context, creatorID string, req CreateTaskRequest) (TaskResponse, error)

	// List retrieves every live task
	List(ctx context.Context) ([]TaskResponse, error)

	// UpdateStatus writes any valid status value; only enum membership
	// is checked here, approval has its own guarded operation
	UpdateStatus(ctx context.Context, taskID string, req UpdateStatusRequest) (TaskResponse, error)

	// AddNote appends a timestamped note to the task
	AddNote(ctx context.Context, taskID string, req AddNoteRequest) (TaskResponse, error)

	// Approve marks a completed task approved. Fails when the task is
	// not completed or when approverID is the task's assignee.
	Approve(ctx context.Context, taskID string, approverID string) (TaskResponse, error)

	// Delete hard-deletes a task
	Delete(ctx context.Context, taskID string) error
}

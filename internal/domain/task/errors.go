package task

import "errors"

// Task domain errors
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrAssigneeNotFound = errors.New("assigned user not found")

	// Approval errors
	ErrNotCompleted = errors.New("task must be completed before approval")
	ErrSelfApproval = errors.New("cannot approve your own task")
)

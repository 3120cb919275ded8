package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
)

type TaskServiceImpl struct {
	db *database.DB
	task.TaskRepository
	user.UserRepository
}

func NewTaskService(db *database.DB, taskRepo task.TaskRepository, userRepo user.UserRepository) task.TaskService {
	return &TaskServiceImpl{
		db:             db,
		TaskRepository: taskRepo,
		UserRepository: userRepo,
	}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, creatorID string, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.UserRepository.GetByID(ctx, req.AssignedTo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.TaskResponse{}, task.ErrAssigneeNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to resolve assignee: %w", err)
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		AssignedBy:  creatorID,
		Status:      task.StatusPending,
		Notes:       []task.Note{},
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return s.respond(ctx, created.ID)
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	result := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, task.ToResponse(t))
	}

	return result, nil
}

// UpdateStatus implements task.TaskService.
// Any enum value is accepted from any caller; approval is the only
// transition with its own guard.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, taskID string, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	status := task.Status(req.Status)

	// A pause reason is only written when entering pause; it is not
	// cleared when the task moves on.
	var pauseReason *string
	if status == task.StatusPause {
		pauseReason = req.PauseReason
	}

	if _, err := s.TaskRepository.UpdateStatus(ctx, taskID, status, pauseReason); err != nil {
		return task.TaskResponse{}, err
	}

	return s.respond(ctx, taskID)
}

// AddNote implements task.TaskService.
func (s *TaskServiceImpl) AddNote(ctx context.Context, taskID string, req task.AddNoteRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	note := task.Note{
		Content: req.Content,
		Date:    time.Now().UTC(),
	}

	if _, err := s.TaskRepository.AppendNote(ctx, taskID, note); err != nil {
		return task.TaskResponse{}, err
	}

	return s.respond(ctx, taskID)
}

// Approve implements task.TaskService.
// The one actor-identity invariant in the system: a worker cannot
// certify their own work.
func (s *TaskServiceImpl) Approve(ctx context.Context, taskID string, approverID string) (task.TaskResponse, error) {
	t, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if t.Status != task.StatusCompleted {
		return task.TaskResponse{}, task.ErrNotCompleted
	}

	if t.AssignedTo == approverID {
		return task.TaskResponse{}, task.ErrSelfApproval
	}

	_, ok, err := s.TaskRepository.Approve(ctx, taskID, approverID, time.Now().UTC())
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !ok {
		// Guard failed between read and write: re-read to report why.
		t, err := s.TaskRepository.GetByID(ctx, taskID)
		if err != nil {
			return task.TaskResponse{}, err
		}
		if t.AssignedTo == approverID {
			return task.TaskResponse{}, task.ErrSelfApproval
		}
		return task.TaskResponse{}, task.ErrNotCompleted
	}

	return s.respond(ctx, taskID)
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, taskID string) error {
	deleted, err := s.TaskRepository.Delete(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return task.ErrTaskNotFound
	}

	return nil
}

// respond reloads the task with user identities joined.
func (s *TaskServiceImpl) respond(ctx context.Context, taskID string) (task.TaskResponse, error) {
	t, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(t), nil
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
	"github.com/opsdesk/opsdesk-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	AddNote(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{
		taskService: taskService,
	}
}

// List implements TaskHandler.
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements TaskHandler.
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create task request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.taskService.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", result)
}

// UpdateStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode status update request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.taskService.UpdateStatus(r.Context(), chi.URLParam(r, "taskID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", result)
}

// AddNote implements TaskHandler.
func (h *taskHandlerImpl) AddNote(w http.ResponseWriter, r *http.Request) {
	var req task.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode add note request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.taskService.AddNote(r.Context(), chi.URLParam(r, "taskID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note added successfully", result)
}

// Approve implements TaskHandler.
func (h *taskHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.Approve(r.Context(), chi.URLParam(r, "taskID"), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task approved successfully", result)
}

// Delete implements TaskHandler.
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}

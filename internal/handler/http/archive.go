package http

import (
	"net/http"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/taskarchive"
	"github.com/opsdesk/opsdesk-backend-go/internal/handler/http/response"
)

type TaskArchiveHandler interface {
	Archive(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type taskArchiveHandlerImpl struct {
	archiveService taskarchive.TaskArchiveService
}

func NewTaskArchiveHandler(archiveService taskarchive.TaskArchiveService) TaskArchiveHandler {
	return &taskArchiveHandlerImpl{
		archiveService: archiveService,
	}
}

// Archive implements TaskArchiveHandler.
func (h *taskArchiveHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	result, err := h.archiveService.ArchiveFinished(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.ArchivedCount == 0 {
		response.SuccessWithMessage(w, "No completed or approved tasks to archive", result)
		return
	}

	response.SuccessWithMessage(w, "Tasks archived successfully", result)
}

// ListAll implements TaskArchiveHandler.
func (h *taskArchiveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.archiveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByDate implements TaskArchiveHandler.
func (h *taskArchiveHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.archiveService.ListByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

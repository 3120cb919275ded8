package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/attendance"
	"github.com/opsdesk/opsdesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ResetToday(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked in successfully", result)
}

// StartBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.StartBreak(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started successfully", result)
}

// EndBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.EndBreak(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended successfully", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", result)
}

// ResetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) ResetToday(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.ResetToday(r.Context(), userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Today's attendance has been reset successfully", nil)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByUser implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Summary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

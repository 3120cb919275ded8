package attendance

import (
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID               string         `json:"id"`
	Date             string         `json:"date"`
	ClockIn          *time.Time     `json:"clock_in,omitempty"`
	BreakStart       *time.Time     `json:"break_start,omitempty"`
	BreakEnd         *time.Time     `json:"break_end,omitempty"`
	ClockOut         *time.Time     `json:"clock_out,omitempty"`
	TotalWorkMinutes int            `json:"total_work_minutes"`
	User             *user.Identity `json:"user,omitempty"`
}

type SummaryRow struct {
	User             *user.Identity `json:"user,omitempty"`
	Date             string         `json:"date"`
	ClockIn          *time.Time     `json:"clock_in,omitempty"`
	ClockOut         *time.Time     `json:"clock_out,omitempty"`
	TotalWorkMinutes int            `json:"total_work_minutes"`
	BreakMinutes     float64        `json:"break_minutes"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID,
		Date:             a.Date.String(),
		ClockIn:          a.ClockIn,
		BreakStart:       a.BreakStart,
		BreakEnd:         a.BreakEnd,
		ClockOut:         a.ClockOut,
		TotalWorkMinutes: a.TotalWorkMinutes,
	}
	if a.UserName != nil && a.UserEmail != nil {
		resp.User = &user.Identity{ID: a.UserID, Name: *a.UserName, Email: *a.UserEmail}
	}
	return resp
}

package attendance

import (
	"context"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/workday"
)

// AttendanceRepository defines data access methods for attendance
// records. The mutating methods are conditional writes: each one only
// lands when the record is still in the state the transition requires,
// so two concurrent requests for the same user-day cannot both
// succeed. A false return means the guard did not match.
type AttendanceRepository interface {
	// ClockIn inserts today's record with clock_in set, or claims an
	// existing empty record. Returns false when clock_in is already set.
	ClockIn(ctx context.Context, userID string, date workday.Day, at time.Time) (Attendance, bool, error)

	// StartBreak sets break_start if clock_in is set and break_start is not
	StartBreak(ctx context.Context, userID string, date workday.Day, at time.Time) (Attendance, bool, error)

	// EndBreak sets break_end if break_start is set and break_end is not
	EndBreak(ctx context.Context, userID string, date workday.Day, at time.Time) (Attendance, bool, error)

	// ClockOut sets clock_out and the computed total if clock_in is set,
	// clock_out is not, and no break is left open
	ClockOut(ctx context.Context, userID string, date workday.Day, at time.Time, totalWorkMinutes int) (Attendance, bool, error)

	// GetByUserAndDate retrieves one user's record for a date; nil when absent
	GetByUserAndDate(ctx context.Context, userID string, date workday.Day) (*Attendance, error)

	// DeleteByUserAndDate removes one user's record for a date.
	// Returns false when no record existed.
	DeleteByUserAndDate(ctx context.Context, userID string, date workday.Day) (bool, error)

	// ListByDate retrieves every user's record for a date with user
	// identity joined, newest first
	ListByDate(ctx context.Context, date workday.Day) ([]Attendance, error)

	// ListByUser retrieves one user's full history, newest day first
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
}

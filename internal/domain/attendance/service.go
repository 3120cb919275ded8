package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
// Every operation takes the acting user's ID explicitly; nothing is
// read from ambient state.
type AttendanceService interface {
	// ClockIn opens today's record for the user
	ClockIn(ctx context.Context, userID string) (AttendanceResponse, error)

	// StartBreak records the start of today's break
	StartBreak(ctx context.Context, userID string) (AttendanceResponse, error)

	// EndBreak records the end of today's break; rejects breaks over 60 minutes
	EndBreak(ctx context.Context, userID string) (AttendanceResponse, error)

	// ClockOut closes today's record and computes total work minutes
	ClockOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// ResetToday deletes the user's own record for today
	ResetToday(ctx context.Context, userID string) error

	// ListByDate retrieves every user's record for a date
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)

	// ListByUser retrieves one user's attendance history
	ListByUser(ctx context.Context, userID string) ([]AttendanceResponse, error)

	// Summary retrieves per-user work and break totals for a date
	Summary(ctx context.Context, date string) ([]SummaryRow, error)
}

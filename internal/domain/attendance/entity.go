package attendance

import (
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/workday"
)

// Attendance is the single mutable record for one user on one IST
// calendar day. The four timestamps, when present, are monotonically
// non-decreasing: ClockIn <= BreakStart <= BreakEnd <= ClockOut.
type Attendance struct {
	ID               string
	UserID           string
	Date             workday.Day
	ClockIn          *time.Time
	BreakStart       *time.Time
	BreakEnd         *time.Time
	ClockOut         *time.Time
	TotalWorkMinutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined from users for list views
	UserName  *string
	UserEmail *string
}

// BreakCap is the longest allowed break. A break of exactly this
// length may still be ended; anything longer is rejected.
const BreakCap = time.Hour

// BreakExceedsCap reports whether a break running from start to end
// overran the cap.
func BreakExceedsCap(start, end time.Time) bool {
	return end.Sub(start) > BreakCap
}

// WorkMinutes computes whole worked minutes between clock-in and
// clock-out, subtracting the break when both ends are recorded.
// Truncated, never rounded up.
func WorkMinutes(clockIn, clockOut time.Time, breakStart, breakEnd *time.Time) int {
	total := clockOut.Sub(clockIn)
	if breakStart != nil && breakEnd != nil {
		total -= breakEnd.Sub(*breakStart)
	}
	return int(total.Minutes())
}

package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn    = errors.New("already clocked in today")
	ErrNotClockedIn        = errors.New("must clock in first")
	ErrBreakAlreadyStarted = errors.New("break already started")
	ErrBreakNotStarted     = errors.New("break not started")
	ErrBreakAlreadyEnded   = errors.New("break already ended")
	ErrBreakTooLong        = errors.New("break duration cannot exceed 60 minutes")
	ErrBreakInProgress     = errors.New("must end break before clocking out")
	ErrAlreadyClockedOut   = errors.New("already clocked out")
	ErrNoRecordFound       = errors.New("no attendance record found for today")
	ErrDateRequired        = errors.New("date parameter required")
)

package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/attendance"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/validator"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/workday"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
	}
}

// ClockIn implements attendance.AttendanceService.
// The conditional insert in the repository makes the existence check
// and the write atomic, so a second concurrent clock-in loses cleanly.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := time.Now().UTC()
	today := workday.FromTime(now)

	att, ok, err := s.AttendanceRepository.ClockIn(ctx, userID, today, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock in: %w", err)
	}
	if !ok {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	return attendance.ToResponse(att), nil
}

// StartBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := time.Now().UTC()
	today := workday.FromTime(now)

	rec, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if rec == nil || rec.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if rec.BreakStart != nil {
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyStarted
	}

	att, ok, err := s.AttendanceRepository.StartBreak(ctx, userID, today, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to start break: %w", err)
	}
	if !ok {
		// Guard failed between read and write: another request won
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyStarted
	}

	return attendance.ToResponse(att), nil
}

// EndBreak implements attendance.AttendanceService.
// The 60-minute cap is evaluated here and only here: a break can run
// long unnoticed and is rejected when the user tries to end it.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := time.Now().UTC()
	today := workday.FromTime(now)

	rec, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if rec == nil || rec.BreakStart == nil {
		return attendance.AttendanceResponse{}, attendance.ErrBreakNotStarted
	}
	if rec.BreakEnd != nil {
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyEnded
	}

	if attendance.BreakExceedsCap(*rec.BreakStart, now) {
		return attendance.AttendanceResponse{}, attendance.ErrBreakTooLong
	}

	att, ok, err := s.AttendanceRepository.EndBreak(ctx, userID, today, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to end break: %w", err)
	}
	if !ok {
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyEnded
	}

	return attendance.ToResponse(att), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := time.Now().UTC()
	today := workday.FromTime(now)

	rec, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if rec == nil || rec.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if rec.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}
	if rec.BreakStart != nil && rec.BreakEnd == nil {
		return attendance.AttendanceResponse{}, attendance.ErrBreakInProgress
	}

	total := attendance.WorkMinutes(*rec.ClockIn, now, rec.BreakStart, rec.BreakEnd)

	att, ok, err := s.AttendanceRepository.ClockOut(ctx, userID, today, now, total)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock out: %w", err)
	}
	if !ok {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	return attendance.ToResponse(att), nil
}

// ResetToday implements attendance.AttendanceService.
// Idempotent delete of the caller's own record for today.
func (s *AttendanceServiceImpl) ResetToday(ctx context.Context, userID string) error {
	today := workday.Today()

	deleted, err := s.AttendanceRepository.DeleteByUserAndDate(ctx, userID, today)
	if err != nil {
		return fmt.Errorf("failed to reset today's attendance: %w", err)
	}
	if !deleted {
		return attendance.ErrNoRecordFound
	}

	return nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	day, err := parseDateParam(date)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.ToResponse(rec))
	}

	return result, nil
}

// ListByUser implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByUser(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user attendance: %w", err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.ToResponse(rec))
	}

	return result, nil
}

// Summary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, date string) ([]attendance.SummaryRow, error) {
	day, err := parseDateParam(date)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance summary: %w", err)
	}

	summary := make([]attendance.SummaryRow, 0, len(records))
	for _, rec := range records {
		resp := attendance.ToResponse(rec)

		var breakMinutes float64
		if rec.BreakStart != nil && rec.BreakEnd != nil {
			breakMinutes = rec.BreakEnd.Sub(*rec.BreakStart).Minutes()
		}

		summary = append(summary, attendance.SummaryRow{
			User:             resp.User,
			Date:             resp.Date,
			ClockIn:          rec.ClockIn,
			ClockOut:         rec.ClockOut,
			TotalWorkMinutes: rec.TotalWorkMinutes,
			BreakMinutes:     breakMinutes,
		})
	}

	return summary, nil
}

func parseDateParam(date string) (workday.Day, error) {
	if validator.IsEmpty(date) {
		return "", attendance.ErrDateRequired
	}

	day, err := workday.Parse(date)
	if err != nil {
		return "", validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	return day, nil
}

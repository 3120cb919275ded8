package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/attendance"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/workday"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, date, clock_in, break_start, break_end, clock_out,
	total_work_minutes, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.ClockIn, &att.BreakStart,
		&att.BreakEnd, &att.ClockOut, &att.TotalWorkMinutes,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// ClockIn implements attendance.AttendanceRepository.
// The upsert makes the existence check and the write one atomic
// statement: a conflicting row with clock_in already set produces no
// row, so two racing clock-ins cannot both succeed.
func (a *attendanceRepository) ClockIn(ctx context.Context, userID string, date workday.Day, at time.Time) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (user_id, date, clock_in)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT attendances_user_date_key
		DO UPDATE SET clock_in = EXCLUDED.clock_in, updated_at = NOW()
		WHERE attendances.clock_in IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to clock in: %w", err)
	}

	return att, true, nil
}

// StartBreak implements attendance.AttendanceRepository.
func (a *attendanceRepository) StartBreak(ctx context.Context, userID string, date workday.Day, at time.Time) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET break_start = $3, updated_at = NOW()
		WHERE user_id = $1
		  AND date = $2
		  AND clock_in IS NOT NULL
		  AND break_start IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to start break: %w", err)
	}

	return att, true, nil
}

// EndBreak implements attendance.AttendanceRepository.
func (a *attendanceRepository) EndBreak(ctx context.Context, userID string, date workday.Day, at time.Time) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET break_end = $3, updated_at = NOW()
		WHERE user_id = $1
		  AND date = $2
		  AND break_start IS NOT NULL
		  AND break_end IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to end break: %w", err)
	}

	return att, true, nil
}

// ClockOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) ClockOut(ctx context.Context, userID string, date workday.Day, at time.Time, totalWorkMinutes int) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET clock_out = $3, total_work_minutes = $4, updated_at = NOW()
		WHERE user_id = $1
		  AND date = $2
		  AND clock_in IS NOT NULL
		  AND clock_out IS NULL
		  AND (break_start IS NULL OR break_end IS NOT NULL)
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date, at, totalWorkMinutes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to clock out: %w", err)
	}

	return att, true, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date workday.Day) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// DeleteByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByUserAndDate(ctx context.Context, userID string, date workday.Day) (bool, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE user_id = $1 AND date = $2`, userID, date)
	if err != nil {
		return false, fmt.Errorf("failed to delete attendance: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date workday.Day) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.clock_in, a.break_start, a.break_end,
		       a.clock_out, a.total_work_minutes, a.created_at, a.updated_at,
		       u.name, u.email
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date = $1
		ORDER BY a.created_at DESC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.clock_in, a.break_start, a.break_end,
		       a.clock_out, a.total_work_minutes, a.created_at, a.updated_at,
		       u.name, u.email
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by user: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.ClockIn, &att.BreakStart,
			&att.BreakEnd, &att.ClockOut, &att.TotalWorkMinutes,
			&att.CreatedAt, &att.UpdatedAt, &att.UserName, &att.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}

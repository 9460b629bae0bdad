package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/andeshr/hrms-backend-go/internal/domain/attendance"
	"github.com/andeshr/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, check_in, check_out, expected_in, expected_out,
	observation, balance_minutes, authorized, created_at, updated_at`

func (r *attendanceRepository) CreateOpen(ctx context.Context, record *attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	// Only an OPEN record blocks a new check-in: once a session is checked
	// out, a second session for the same day (the split-shift case) is
	// allowed. The WHERE NOT EXISTS guard plus the partial unique index on
	// (employee_id, date) WHERE check_out IS NULL close the double check-in
	// race: a concurrent insert either loses the index conflict or sees zero
	// rows inserted here.
	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in, expected_in, expected_out,
			observation, balance_minutes, authorized
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE employee_id = $2 AND date = $3 AND check_out IS NULL
		)
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		clockPtr(record.CheckIn),
		clockPtr(record.ExpectedIn),
		clockPtr(record.ExpectedOut),
		record.Observation,
		record.BalanceMinutes,
		record.Authorized,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("create attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedIn
	}
	return nil
}

func (r *attendanceRepository) GetOpen(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2 AND check_out IS NULL
	`

	var record attendance.Record
	if err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrNoActiveCheckIn
		}
		return nil, fmt.Errorf("get open attendance record: %w", err)
	}
	return &record, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	var record attendance.Record
	if err := scanAttendance(q.QueryRow(ctx, query, id), &record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, fmt.Errorf("get attendance record: %w", err)
	}
	return &record, nil
}

func (r *attendanceRepository) Close(ctx context.Context, record *attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records SET
			check_out = $2, expected_out = $3, observation = $4,
			balance_minutes = $5, updated_at = NOW()
		WHERE id = $1 AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		clockPtr(record.CheckOut),
		clockPtr(record.ExpectedOut),
		record.Observation,
		record.BalanceMinutes,
	)
	if err != nil {
		return fmt.Errorf("close attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNoActiveCheckIn
	}
	return nil
}

func (r *attendanceRepository) Update(ctx context.Context, record *attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records SET
			check_in = $2, check_out = $3, expected_in = $4, expected_out = $5,
			observation = $6, balance_minutes = $7, authorized = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		clockPtr(record.CheckIn),
		clockPtr(record.CheckOut),
		clockPtr(record.ExpectedIn),
		clockPtr(record.ExpectedOut),
		record.Observation,
		record.BalanceMinutes,
		record.Authorized,
	)
	if err != nil {
		return fmt.Errorf("update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
	`
	return r.list(ctx, q, query, employeeID, from, to)
}

func (r *attendanceRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendance_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC, employee_id
	`
	return r.list(ctx, q, query, from, to)
}

func (r *attendanceRepository) SumBalance(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(balance_minutes), 0)
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum attendance balance: %w", err)
	}
	return total, nil
}

func (r *attendanceRepository) CountPresentDays(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT date)
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		  AND check_out IS NOT NULL
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count present days: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) list(ctx context.Context, q database.Querier, query string, args ...any) ([]attendance.Record, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var record attendance.Record
		if err := scanAttendance(rows, &record); err != nil {
			return nil, fmt.Errorf("scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanAttendance(row pgx.Row, record *attendance.Record) error {
	var checkIn, checkOut, expectedIn, expectedOut *int

	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Date,
		&checkIn, &checkOut, &expectedIn, &expectedOut,
		&record.Observation, &record.BalanceMinutes, &record.Authorized,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return err
	}

	record.CheckIn = clockFromPtr(checkIn)
	record.CheckOut = clockFromPtr(checkOut)
	record.ExpectedIn = clockFromPtr(expectedIn)
	record.ExpectedOut = clockFromPtr(expectedOut)
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/andeshr/hrms-backend-go/internal/domain/leave"
	"github.com/andeshr/hrms-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	id, employee_id, type, start_date, end_date, start_time, end_time, days,
	status, reason, created_at, updated_at`

func (r *leaveRepository) Create(ctx context.Context, req *leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, type, start_date, end_date, start_time, end_time,
			days, status, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		string(req.Type),
		req.StartDate,
		req.EndDate,
		clockPtr(req.StartTime),
		clockPtr(req.EndTime),
		req.Days,
		string(req.Status),
		req.Reason,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create leave request: %w", err)
	}
	return nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	var req leave.Request
	if err := scanLeaveRequest(q.QueryRow(ctx, query, id), &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrRequestNotFound
		}
		return nil, fmt.Errorf("get leave request: %w", err)
	}
	return &req, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`
	return r.list(ctx, q, query, employeeID)
}

func (r *leaveRepository) ListByStatus(ctx context.Context, status leave.Status) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests
		WHERE status = $1
		ORDER BY created_at
	`
	return r.list(ctx, q, query, string(status))
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leave_requests SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func (r *leaveRepository) SumDays(ctx context.Context, employeeID string, leaveType leave.Type, status leave.Status, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM leave_requests
		WHERE employee_id = $1 AND type = $2 AND status = $3
		  AND start_date BETWEEN $4 AND $5
	`

	var total int
	err := q.QueryRow(ctx, query, employeeID, string(leaveType), string(status), from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum leave days: %w", err)
	}
	return total, nil
}

func (r *leaveRepository) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3 AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("check leave overlap: %w", err)
	}
	return exists, nil
}

func (r *leaveRepository) list(ctx context.Context, q database.Querier, query string, args ...any) ([]leave.Request, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := scanLeaveRequest(rows, &req); err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func scanLeaveRequest(row pgx.Row, req *leave.Request) error {
	var leaveType, status string
	var startTime, endTime *int
	err := row.Scan(
		&req.ID, &req.EmployeeID, &leaveType, &req.StartDate, &req.EndDate,
		&startTime, &endTime, &req.Days, &status, &req.Reason,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return err
	}
	req.Type = leave.Type(leaveType)
	req.Status = leave.Status(status)
	req.StartTime = clockFromPtr(startTime)
	req.EndTime = clockFromPtr(endTime)
	return nil
}

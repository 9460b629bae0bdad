package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/andeshr/hrms-backend-go/internal/domain/schedule"
	"github.com/andeshr/hrms-backend-go/internal/pkg/database"
	"github.com/andeshr/hrms-backend-go/internal/pkg/timeutil"
)

// Shift clocks are stored as smallint minutes since midnight; NULL means the
// shift does not exist for that day.
type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) GetDay(ctx context.Context, employeeID string, weekday time.Weekday) (*schedule.DaySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, weekday,
		       shift1_start, shift1_end, shift2_start, shift2_end,
		       created_at, updated_at
		FROM day_schedules
		WHERE employee_id = $1 AND weekday = $2
	`

	var day schedule.DaySchedule
	if err := scanDaySchedule(q.QueryRow(ctx, query, employeeID, int(weekday)), &day); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("get day schedule: %w", err)
	}
	return &day, nil
}

func (r *scheduleRepository) GetWeek(ctx context.Context, employeeID string) ([]schedule.DaySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, weekday,
		       shift1_start, shift1_end, shift2_start, shift2_end,
		       created_at, updated_at
		FROM day_schedules
		WHERE employee_id = $1
		ORDER BY weekday
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("get week schedule: %w", err)
	}
	defer rows.Close()

	var days []schedule.DaySchedule
	for rows.Next() {
		var day schedule.DaySchedule
		if err := scanDaySchedule(rows, &day); err != nil {
			return nil, fmt.Errorf("scan day schedule: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (r *scheduleRepository) Upsert(ctx context.Context, day *schedule.DaySchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_schedules (
			employee_id, weekday, shift1_start, shift1_end, shift2_start, shift2_end
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, weekday) DO UPDATE SET
			shift1_start = EXCLUDED.shift1_start,
			shift1_end = EXCLUDED.shift1_end,
			shift2_start = EXCLUDED.shift2_start,
			shift2_end = EXCLUDED.shift2_end,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	var s1Start, s1End, s2Start, s2End *int
	if day.Shift1 != nil {
		s1Start, s1End = clockPtr(day.Shift1.Start), clockPtr(day.Shift1.End)
	}
	if day.Shift2 != nil {
		s2Start, s2End = clockPtr(day.Shift2.Start), clockPtr(day.Shift2.End)
	}

	err := q.QueryRow(ctx, query,
		day.EmployeeID, int(day.Weekday), s1Start, s1End, s2Start, s2End,
	).Scan(&day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert day schedule: %w", err)
	}
	return nil
}

func (r *scheduleRepository) DeleteDay(ctx context.Context, employeeID string, weekday time.Weekday) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM day_schedules WHERE employee_id = $1 AND weekday = $2`,
		employeeID, int(weekday),
	)
	if err != nil {
		return fmt.Errorf("delete day schedule: %w", err)
	}
	return nil
}

func scanDaySchedule(row pgx.Row, day *schedule.DaySchedule) error {
	var weekday int
	var s1Start, s1End, s2Start, s2End *int

	err := row.Scan(
		&day.EmployeeID, &weekday,
		&s1Start, &s1End, &s2Start, &s2End,
		&day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		return err
	}

	day.Weekday = time.Weekday(weekday)
	if s1Start != nil && s1End != nil {
		day.Shift1 = &schedule.Shift{
			Start: timeutil.FromMinutes(*s1Start),
			End:   timeutil.FromMinutes(*s1End),
		}
	}
	if s2Start != nil && s2End != nil {
		day.Shift2 = &schedule.Shift{
			Start: timeutil.FromMinutes(*s2Start),
			End:   timeutil.FromMinutes(*s2End),
		}
	}
	return nil
}

func clockPtr(c timeutil.Clock) *int {
	if !c.IsPresent() {
		return nil
	}
	m := c.Minutes()
	return &m
}

func clockFromPtr(p *int) timeutil.Clock {
	if p == nil {
		return timeutil.Clock{}
	}
	return timeutil.FromMinutes(*p)
}

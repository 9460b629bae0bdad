package schedule

import (
	"context"
	"time"
)

// ScheduleRepository defines data access for weekly schedules, keyed by
// (employee, weekday).
type ScheduleRepository interface {
	// GetDay retrieves the schedule for one employee and weekday.
	// Returns ErrScheduleNotFound when the employee has no entry for the day.
	GetDay(ctx context.Context, employeeID string, weekday time.Weekday) (*DaySchedule, error)

	// GetWeek retrieves all configured days for an employee, ordered by weekday.
	GetWeek(ctx context.Context, employeeID string) ([]DaySchedule, error)

	// Upsert inserts or replaces the schedule row for (employee, weekday).
	Upsert(ctx context.Context, day *DaySchedule) error

	// DeleteDay removes the schedule row for (employee, weekday).
	DeleteDay(ctx context.Context, employeeID string, weekday time.Weekday) error
}

package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// CreateOpen inserts a new open record for (employee, date). It returns
	// ErrAlreadyCheckedIn only while an open record for that day exists,
	// including when a concurrent request inserted one first; a closed
	// record does not block a second session on the same day.
	CreateOpen(ctx context.Context, record *Record) error

	// GetOpen returns the open record for (employee, date), or
	// ErrNoActiveCheckIn when the employee has not checked in or has already
	// checked out.
	GetOpen(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	GetByID(ctx context.Context, id string) (*Record, error)

	// Close writes the check-out side of a record: clock, observation,
	// balance delta already applied by the caller.
	Close(ctx context.Context, record *Record) error

	Update(ctx context.Context, record *Record) error

	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Record, error)

	// SumBalance totals BalanceMinutes for an employee over [from, to].
	SumBalance(ctx context.Context, employeeID string, from, to time.Time) (int, error)

	// CountPresentDays counts distinct dates with a closed record in range.
	CountPresentDays(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}

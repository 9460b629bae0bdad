package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListByStatus(ctx context.Context, status Status) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// SumDays totals Days for an employee's requests of the given type and
	// status whose start date falls inside [from, to].
	SumDays(ctx context.Context, employeeID string, leaveType Type, status Status, from, to time.Time) (int, error)

	// HasOverlap reports whether any pending or approved request of the
	// employee intersects [start, end].
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}

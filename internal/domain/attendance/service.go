package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string, req *CheckInRequest) (*RecordResponse, error)
	CheckOut(ctx context.Context, employeeID string) (*RecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]RecordResponse, error)
	// ListAll returns every employee's records in the range, for admin reads.
	ListAll(ctx context.Context, from, to time.Time) ([]RecordResponse, error)
	Update(ctx context.Context, id string, req *UpdateRecordRequest) (*RecordResponse, error)
	Balance(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}

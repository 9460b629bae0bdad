package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	Create(ctx context.Context, slip *Payslip) error
	GetByID(ctx context.Context, id string) (*Payslip, error)
	GetByPeriod(ctx context.Context, employeeID string, year int, month time.Month) (*Payslip, error)
	ListByPeriod(ctx context.Context, year int, month time.Month) ([]Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete marks the payslip deleted. Reads never return deleted payslips.
	Delete(ctx context.Context, id string) error
}

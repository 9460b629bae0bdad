package payroll

import "context"

type PayrollService interface {
	Generate(ctx context.Context, req *GenerateRequest) ([]PayslipResponse, error)
	ListByPeriod(ctx context.Context, year, month int) ([]PayslipResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	UpdateStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*PayslipResponse, error)
	Delete(ctx context.Context, id string) error
}

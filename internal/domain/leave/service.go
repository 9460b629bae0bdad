package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, employeeID string, req *CreateRequestRequest) (*RequestResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]RequestResponse, error)
	ListPending(ctx context.Context) ([]RequestResponse, error)
	UpdateStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*RequestResponse, error)
	VacationBalance(ctx context.Context, employeeID string, year int) (*VacationBalanceResponse, error)
}

package employee

import "context"

// EmployeeService defines business logic for employee administration.
// All mutating operations are admin-only; enforcement sits in the router.
type EmployeeService interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)

	Get(ctx context.Context, id string) (*EmployeeResponse, error)

	List(ctx context.Context) ([]EmployeeResponse, error)

	Update(ctx context.Context, req *UpdateEmployeeRequest) (*EmployeeResponse, error)

	Delete(ctx context.Context, id string) error
}

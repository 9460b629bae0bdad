package employee

import "context"

// EmployeeRepository defines data access for employee master records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *Employee) error

	// GetByID retrieves an employee by RUT.
	GetByID(ctx context.Context, id string) (*Employee, error)

	GetByEmail(ctx context.Context, email string) (*Employee, error)

	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp *Employee) error

	Delete(ctx context.Context, id string) error
}

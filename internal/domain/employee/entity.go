package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleEmployee Role = "Employee"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleEmployee),
}

// Employee is the master record for one person on the payroll. The ID is the
// normalized Chilean RUT, which is what every attendance and payroll row is
// keyed by.
type Employee struct {
	ID                 string // RUT, e.g. "18532664-0"
	Name               string
	Email              string
	Role               Role
	BaseSalary         decimal.Decimal
	AFPPlan            string          // pension fund administrator name, drives the contribution rate
	HealthSystem       string          // FONASA or an ISAPRE name
	MealAllowance      decimal.Decimal // colación, non-taxable
	TransportAllowance decimal.Decimal // movilización, non-taxable
	PasswordHash       string
	JoinDate           time.Time
	TerminationDate    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Active reports whether the employee has no termination date in the past.
func (e Employee) Active(now time.Time) bool {
	return e.TerminationDate == nil || e.TerminationDate.After(now)
}

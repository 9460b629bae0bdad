package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

// Payslips are created Pending and resolved exactly once to Approved or
// Rejected. Deleted is a soft-delete marker; deleted payslips are filtered
// out of every read.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusDeleted  Status = "deleted"
)

// Payslip is one employee's settlement for one month. All money amounts are
// CLP rounded to whole pesos.
type Payslip struct {
	ID         string
	EmployeeID string
	Year       int
	Month      time.Month

	WorkedDays  int
	AbsentDays  int
	OvertimeHrs decimal.Decimal
	BaseSalary  decimal.Decimal

	Gratification decimal.Decimal
	OvertimePay   decimal.Decimal
	TaxableIncome decimal.Decimal

	MealAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	NonTaxableIncome   decimal.Decimal

	AFPPlan      string
	AFPAmount    decimal.Decimal
	HealthSystem string
	HealthAmount decimal.Decimal
	UIAmount     decimal.Decimal
	TaxAmount    decimal.Decimal

	NetPay decimal.Decimal

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

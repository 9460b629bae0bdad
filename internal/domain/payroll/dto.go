package payroll

import (
	"time"

	"github.com/andeshr/hrms-backend-go/internal/pkg/validator"
)

// GenerateRequest triggers payslip generation for a period. EmployeeID empty
// means every active employee.
type GenerateRequest struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	EmployeeID string `json:"employee_id"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year out of range",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be approved or rejected",
		}}
	}
	return nil
}

type PayslipResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	WorkedDays  int    `json:"worked_days"`
	AbsentDays  int    `json:"absent_days"`
	OvertimeHrs string `json:"overtime_hours"`
	BaseSalary  string `json:"base_salary"`

	Gratification string `json:"gratification"`
	OvertimePay   string `json:"overtime_pay"`
	TaxableIncome string `json:"taxable_income"`

	MealAllowance      string `json:"meal_allowance"`
	TransportAllowance string `json:"transport_allowance"`
	NonTaxableIncome   string `json:"non_taxable_income"`

	AFPPlan      string `json:"afp_plan"`
	AFPAmount    string `json:"afp_amount"`
	HealthSystem string `json:"health_system"`
	HealthAmount string `json:"health_amount"`
	UIAmount     string `json:"unemployment_insurance_amount"`
	TaxAmount    string `json:"tax_amount"`

	NetPay string `json:"net_pay"`
	Status string `json:"status"`
}

func ToResponse(p *Payslip) PayslipResponse {
	return PayslipResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Year:       p.Year,
		Month:      int(p.Month),

		WorkedDays:  p.WorkedDays,
		AbsentDays:  p.AbsentDays,
		OvertimeHrs: p.OvertimeHrs.String(),
		BaseSalary:  p.BaseSalary.String(),

		Gratification: p.Gratification.String(),
		OvertimePay:   p.OvertimePay.String(),
		TaxableIncome: p.TaxableIncome.String(),

		MealAllowance:      p.MealAllowance.String(),
		TransportAllowance: p.TransportAllowance.String(),
		NonTaxableIncome:   p.NonTaxableIncome.String(),

		AFPPlan:      p.AFPPlan,
		AFPAmount:    p.AFPAmount.String(),
		HealthSystem: p.HealthSystem,
		HealthAmount: p.HealthAmount.String(),
		UIAmount:     p.UIAmount.String(),
		TaxAmount:    p.TaxAmount.String(),

		NetPay: p.NetPay.String(),
		Status: string(p.Status),
	}
}

// Period is a convenience for services working with (year, month).
type Period struct {
	Year  int
	Month time.Month
}

// Bounds returns the first and last day of the period at midnight in loc.
func (p Period) Bounds(loc *time.Location) (time.Time, time.Time) {
	first := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return first, last
}

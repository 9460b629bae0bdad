package employee

import (
	"github.com/shopspring/decimal"

	"github.com/andeshr/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	RUT                string          `json:"rut"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Role               string          `json:"role"`
	Password           string          `json:"password"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	AFPPlan            string          `json:"afp_plan"`
	HealthSystem       string          `json:"health_system"`
	MealAllowance      decimal.Decimal `json:"meal_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	JoinDate           string          `json:"join_date"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidRUT(r.RUT) {
		errs = append(errs, validator.ValidationError{
			Field:   "rut",
			Message: "rut is not a valid Chilean RUT",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be Admin or Employee",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                 string           `json:"-"`
	Name               *string          `json:"name"`
	Email              *string          `json:"email"`
	Role               *string          `json:"role"`
	BaseSalary         *decimal.Decimal `json:"base_salary"`
	AFPPlan            *string          `json:"afp_plan"`
	HealthSystem       *string          `json:"health_system"`
	MealAllowance      *decimal.Decimal `json:"meal_allowance"`
	TransportAllowance *decimal.Decimal `json:"transport_allowance"`
	TerminationDate    *string          `json:"termination_date"` // YYYY-MM-DD, empty clears
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be Admin or Employee",
		})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.TerminationDate != nil && *r.TerminationDate != "" {
		if _, ok := validator.IsValidDate(*r.TerminationDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "termination_date",
				Message: "termination_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Role               string          `json:"role"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	AFPPlan            string          `json:"afp_plan"`
	HealthSystem       string          `json:"health_system"`
	MealAllowance      decimal.Decimal `json:"meal_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	JoinDate           string          `json:"join_date"`
	TerminationDate    *string         `json:"termination_date,omitempty"`
}

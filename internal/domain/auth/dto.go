package auth

import (
	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() error {
	if validator.IsEmpty(r.RefreshToken) {
		return validator.ValidationErrors{{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		}}
	}
	return nil
}

type TokenPairResponse struct {
	AccessToken  string                     `json:"access_token"`
	RefreshToken string                     `json:"refresh_token"`
	Employee     *employee.EmployeeResponse `json:"employee,omitempty"`
}

package response

import (
	"errors"
	"net/http"

	"github.com/andeshr/hrms-backend-go/internal/domain/attendance"
	"github.com/andeshr/hrms-backend-go/internal/domain/auth"
	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/domain/leave"
	"github.com/andeshr/hrms-backend-go/internal/domain/payroll"
	"github.com/andeshr/hrms-backend-go/internal/domain/schedule"
	"github.com/andeshr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee already registered")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Schedule
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		Conflict(w, "No open check-in to close")
	case errors.Is(err, attendance.ErrNoSchedule):
		BadRequest(w, "No schedule for this day", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestNotPending):
		Conflict(w, "Leave request already resolved")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Not enough vacation days available", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "Dates overlap an existing request")

	// Payroll
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipExists):
		Conflict(w, "Payslip already exists for this period")
	case errors.Is(err, payroll.ErrPayslipNotPending):
		Conflict(w, "Payslip already resolved")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

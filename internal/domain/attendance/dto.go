package attendance

import (
	"github.com/andeshr/hrms-backend-go/internal/pkg/validator"
)

// CheckInRequest opens the attendance day. Authorized marks an approved
// out-of-schedule work session, which books elapsed time as overtime instead
// of rejecting the check-in.
type CheckInRequest struct {
	Authorized bool `json:"authorized"`
}

type CheckOutRequest struct{}

// UpdateRecordRequest is the admin correction surface. Clocks are HH:MM
// strings; nil fields are left untouched.
type UpdateRecordRequest struct {
	CheckIn        *string `json:"check_in"`
	CheckOut       *string `json:"check_out"`
	Observation    *string `json:"observation"`
	BalanceMinutes *int    `json:"balance_minutes"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil && *r.CheckIn != "" && !validator.IsValidClock(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "must be HH:MM",
		})
	}
	if r.CheckOut != nil && *r.CheckOut != "" && !validator.IsValidClock(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	Date           string `json:"date"`
	CheckIn        string `json:"check_in,omitempty"`
	CheckOut       string `json:"check_out,omitempty"`
	ExpectedIn     string `json:"expected_in,omitempty"`
	ExpectedOut    string `json:"expected_out,omitempty"`
	Observation    string `json:"observation,omitempty"`
	BalanceMinutes int    `json:"balance_minutes"`
	Authorized     bool   `json:"authorized"`
}

// ToResponse flattens a record for the HTTP layer.
func ToResponse(r *Record) RecordResponse {
	resp := RecordResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		Date:           r.Date.Format("2006-01-02"),
		Observation:    r.Observation,
		BalanceMinutes: r.BalanceMinutes,
		Authorized:     r.Authorized,
	}
	if r.CheckIn.IsPresent() {
		resp.CheckIn = r.CheckIn.String()
	}
	if r.CheckOut.IsPresent() {
		resp.CheckOut = r.CheckOut.String()
	}
	if r.ExpectedIn.IsPresent() {
		resp.ExpectedIn = r.ExpectedIn.String()
	}
	if r.ExpectedOut.IsPresent() {
		resp.ExpectedOut = r.ExpectedOut.String()
	}
	return resp
}

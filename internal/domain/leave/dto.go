package leave

import (
	"github.com/andeshr/hrms-backend-go/internal/pkg/validator"
)

// CreateRequestRequest covers whole-day and hourly requests: HH:MM
// start_time/end_time bound an hourly request and must come together.
type CreateRequestRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of vacation, medical, personal",
		})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}
	if (r.StartTime == "") != (r.EndTime == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time and end_time must be supplied together",
		})
	}
	if r.StartTime != "" && !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "must be HH:MM",
		})
	}
	if r.EndTime != "" && !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "must be HH:MM",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	if end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not precede start_date",
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

type RequestResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	Days       int    `json:"days"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

func ToResponse(r *Request) RequestResponse {
	resp := RequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Type:       string(r.Type),
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		Days:       r.Days,
		Status:     string(r.Status),
		Reason:     r.Reason,
	}
	if r.StartTime.IsPresent() {
		resp.StartTime = r.StartTime.String()
	}
	if r.EndTime.IsPresent() {
		resp.EndTime = r.EndTime.String()
	}
	return resp
}

// VacationBalanceResponse is the annual vacation ledger snapshot.
type VacationBalanceResponse struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Allowance  int    `json:"allowance"`
	Used       int    `json:"used"`
	Pending    int    `json:"pending"`
	Available  int    `json:"available"`
}

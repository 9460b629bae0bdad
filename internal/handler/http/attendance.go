package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andeshr/hrms-backend-go/internal/domain/attendance"
	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/andeshr/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.attendanceService.CheckIn(r.Context(), middleware.EmployeeID(r.Context()), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", result)
}

func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckOut(r.Context(), middleware.EmployeeID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, from, to, ok := h.rangeQuery(w, r)
	if !ok {
		return
	}

	// An admin listing without an explicit employee scope sees every
	// employee's records in the range.
	if r.URL.Query().Get("employee_id") == "" && middleware.Role(r.Context()) == string(employee.RoleAdmin) {
		result, err := h.attendanceService.ListAll(r.Context(), from, to)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	employeeID, from, to, ok := h.rangeQuery(w, r)
	if !ok {
		return
	}

	balance, err := h.attendanceService.Balance(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]any{
		"employee_id":     employeeID,
		"from":            from.Format("2006-01-02"),
		"to":              to.Format("2006-01-02"),
		"balance_minutes": balance,
	})
}

// rangeQuery resolves the employee and date range for read endpoints. Only
// admins may read someone else's records; the range defaults to the current
// month.
func (h *attendanceHandlerImpl) rangeQuery(w http.ResponseWriter, r *http.Request) (string, time.Time, time.Time, bool) {
	employeeID := middleware.EmployeeID(r.Context())
	if requested := r.URL.Query().Get("employee_id"); requested != "" && requested != employeeID {
		if middleware.Role(r.Context()) != string(employee.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return "", time.Time{}, time.Time{}, false
		}
		employeeID = requested
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, -1)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return "", time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return "", time.Time{}, time.Time{}, false
		}
		to = parsed
	}

	return employeeID, from, to, true
}

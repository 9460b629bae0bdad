package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/domain/leave"
	"github.com/andeshr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/andeshr/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	VacationBalance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Create(r.Context(), middleware.EmployeeID(r.Context()), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.resolveEmployee(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) VacationBalance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.resolveEmployee(w, r)
	if !ok {
		return
	}

	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	result, err := h.leaveService.VacationBalance(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) resolveEmployee(w http.ResponseWriter, r *http.Request) (string, bool) {
	employeeID := middleware.EmployeeID(r.Context())
	if requested := r.URL.Query().Get("employee_id"); requested != "" && requested != employeeID {
		if middleware.Role(r.Context()) != string(employee.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return "", false
		}
		employeeID = requested
	}
	return employeeID, true
}

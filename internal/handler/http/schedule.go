package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andeshr/hrms-backend-go/internal/domain/schedule"
	"github.com/andeshr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/andeshr/hrms-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	GetMyWeek(w http.ResponseWriter, r *http.Request)
	UpsertDay(w http.ResponseWriter, r *http.Request)
	DeleteDay(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

func (h *scheduleHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetWeek(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) GetMyWeek(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetWeek(r.Context(), middleware.EmployeeID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) UpsertDay(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.scheduleService.UpsertDay(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) DeleteDay(w http.ResponseWriter, r *http.Request) {
	weekday, err := strconv.Atoi(chi.URLParam(r, "weekday"))
	if err != nil {
		response.BadRequest(w, "weekday must be a number between 0 and 6", nil)
		return
	}

	if err := h.scheduleService.DeleteDay(r.Context(), chi.URLParam(r, "employeeID"), weekday); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule day deleted", nil)
}

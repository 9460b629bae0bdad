package employee

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/pkg/validator"
)

type employeeService struct {
	employeeRepo employee.EmployeeRepository
	location     *time.Location
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, location *time.Location) employee.EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		location:     location,
		now:          time.Now,
	}
}

func (s *employeeService) Create(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	joinDate := s.now().In(s.location)
	if req.JoinDate != "" {
		joinDate, _ = time.ParseInLocation("2006-01-02", req.JoinDate, s.location)
	}

	emp := &employee.Employee{
		ID:                 validator.NormalizeRUT(req.RUT),
		Name:               req.Name,
		Email:              req.Email,
		Role:               employee.Role(req.Role),
		BaseSalary:         req.BaseSalary,
		AFPPlan:            req.AFPPlan,
		HealthSystem:       req.HealthSystem,
		MealAllowance:      req.MealAllowance,
		TransportAllowance: req.TransportAllowance,
		PasswordHash:       string(hash),
		JoinDate:           joinDate,
	}
	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	resp := toResponse(emp)
	return &resp, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, validator.NormalizeRUT(id))
	if err != nil {
		return nil, err
	}
	resp := toResponse(emp)
	return &resp, nil
}

func (s *employeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toResponse(&employees[i]))
	}
	return responses, nil
}

func (s *employeeService) Update(ctx context.Context, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, validator.NormalizeRUT(req.ID))
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.AFPPlan != nil {
		emp.AFPPlan = *req.AFPPlan
	}
	if req.HealthSystem != nil {
		emp.HealthSystem = *req.HealthSystem
	}
	if req.MealAllowance != nil {
		emp.MealAllowance = *req.MealAllowance
	}
	if req.TransportAllowance != nil {
		emp.TransportAllowance = *req.TransportAllowance
	}
	if req.TerminationDate != nil {
		if *req.TerminationDate == "" {
			emp.TerminationDate = nil
		} else {
			date, _ := time.ParseInLocation("2006-01-02", *req.TerminationDate, s.location)
			emp.TerminationDate = &date
		}
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	resp := toResponse(emp)
	return &resp, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, validator.NormalizeRUT(id))
}

func toResponse(emp *employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                 emp.ID,
		Name:               emp.Name,
		Email:              emp.Email,
		Role:               string(emp.Role),
		BaseSalary:         emp.BaseSalary,
		AFPPlan:            emp.AFPPlan,
		HealthSystem:       emp.HealthSystem,
		MealAllowance:      emp.MealAllowance,
		TransportAllowance: emp.TransportAllowance,
		JoinDate:           emp.JoinDate.Format("2006-01-02"),
	}
	if emp.TerminationDate != nil {
		date := emp.TerminationDate.Format("2006-01-02")
		resp.TerminationDate = &date
	}
	return resp
}

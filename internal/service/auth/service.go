package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/andeshr/hrms-backend-go/internal/domain/auth"
	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/pkg/jwt"
)

type authService struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.tokenPair(emp)
}

func (s *authService) Refresh(ctx context.Context, req *auth.RefreshRequest) (*auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := s.jwtService.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	return s.tokenPair(emp)
}

func (s *authService) tokenPair(emp *employee.Employee) (*auth.TokenPairResponse, error) {
	accessToken, _, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, _, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &auth.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Employee: &employee.EmployeeResponse{
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
		},
	}, nil
}

package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/andeshr/hrms-backend-go/internal/domain/auth"
	"github.com/andeshr/hrms-backend-go/internal/handler/http/response"
)

type contextKey string

const (
	EmployeeIDKey contextKey = "employee_id"
	RoleKey       contextKey = "role"
)

// AuthRequired rejects anything without a valid access token and stashes the
// employee identity in the request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || employeeID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		role, _ := claims["role"].(string)

		ctx := context.WithValue(r.Context(), EmployeeIDKey, employeeID)
		ctx = context.WithValue(ctx, RoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EmployeeID returns the authenticated employee from the request context.
func EmployeeID(ctx context.Context) string {
	id, _ := ctx.Value(EmployeeIDKey).(string)
	return id
}

// Role returns the authenticated role from the request context.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(RoleKey).(string)
	return role
}

package middleware

import (
	"net/http"

	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/handler/http/response"
)

// AdminRequired restricts the route to Admin users. Must run after
// AuthRequired.
func AdminRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != string(employee.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/andeshr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/andeshr/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Schedule   ScheduleHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
}

func NewRouter(jwtService jwt.Service, env string, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/", h.Attendance.List)
				r.Get("/balance", h.Attendance.Balance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminRequired)
					r.Put("/{id}", h.Attendance.Update)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/my", h.Schedule.GetMyWeek)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminRequired)
					r.Get("/{employeeID}", h.Schedule.GetWeek)
					r.Put("/{employeeID}", h.Schedule.UpsertDay)
					r.Delete("/{employeeID}/{weekday}", h.Schedule.DeleteDay)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Get("/vacation-balance", h.Leave.VacationBalance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminRequired)
					r.Get("/pending", h.Leave.ListPending)
					r.Put("/{id}/status", h.Leave.UpdateStatus)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", h.Payroll.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminRequired)
					r.Post("/", h.Payroll.Generate)
					r.Get("/", h.Payroll.ListByPeriod)
					r.Put("/{id}/status", h.Payroll.UpdateStatus)
					r.Delete("/{id}", h.Payroll.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminRequired)
				r.Post("/", h.Employee.Create)
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})
		})
	})

	return r
}

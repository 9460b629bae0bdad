package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/andeshr/hrms-backend-go/internal/config"
	appHTTP "github.com/andeshr/hrms-backend-go/internal/handler/http"
	"github.com/andeshr/hrms-backend-go/internal/pkg/database"
	"github.com/andeshr/hrms-backend-go/internal/pkg/holiday"
	"github.com/andeshr/hrms-backend-go/internal/pkg/jwt"
	"github.com/andeshr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/andeshr/hrms-backend-go/internal/service/attendance"
	authService "github.com/andeshr/hrms-backend-go/internal/service/auth"
	employeeService "github.com/andeshr/hrms-backend-go/internal/service/employee"
	leaveService "github.com/andeshr/hrms-backend-go/internal/service/leave"
	payrollService "github.com/andeshr/hrms-backend-go/internal/service/payroll"
	scheduleService "github.com/andeshr/hrms-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	location, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		log.Fatal("Invalid attendance timezone: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calendar := holiday.NewCalendar(holiday.NewAPIClient(cfg.Holiday.BaseURL))

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, location)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, scheduleRepo, calendar, location)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, calendar, location, cfg.Attendance.VacationAllowance)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo, leaveRepo, calendar, location)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, cfg.App.AllowedOrigins, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

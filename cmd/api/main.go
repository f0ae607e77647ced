package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/payrollpro/payroll-backend-go/internal/config"
	"github.com/payrollpro/payroll-backend-go/internal/fixtures"
	appHTTP "github.com/payrollpro/payroll-backend-go/internal/handler/http"
	"github.com/payrollpro/payroll-backend-go/internal/pkg/database"
	"github.com/payrollpro/payroll-backend-go/internal/pkg/jwt"
	"github.com/payrollpro/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/payrollpro/payroll-backend-go/internal/service/attendance"
	authService "github.com/payrollpro/payroll-backend-go/internal/service/auth"
	employeeService "github.com/payrollpro/payroll-backend-go/internal/service/employee"
	leaveService "github.com/payrollpro/payroll-backend-go/internal/service/leave"
	payrollService "github.com/payrollpro/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	if err := fixtures.EnsureAdminUser(context.Background(), userRepo, cfg.Admin); err != nil {
		log.Fatal("Error bootstrapping admin user: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	runTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo, runTx)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, attendanceRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

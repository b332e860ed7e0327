package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/checadormx/checador-backend-go/internal/config"
	appHTTP "github.com/checadormx/checador-backend-go/internal/handler/http"
	"github.com/checadormx/checador-backend-go/internal/pkg/database"
	"github.com/checadormx/checador-backend-go/internal/pkg/jwt"
	"github.com/checadormx/checador-backend-go/internal/repository/postgresql"
	attendanceService "github.com/checadormx/checador-backend-go/internal/service/attendance"
	serviceAuth "github.com/checadormx/checador-backend-go/internal/service/auth"
	conceptService "github.com/checadormx/checador-backend-go/internal/service/concept"
	dashboardService "github.com/checadormx/checador-backend-go/internal/service/dashboard"
	employeeService "github.com/checadormx/checador-backend-go/internal/service/employee"
	kioskService "github.com/checadormx/checador-backend-go/internal/service/kiosk"
	reportService "github.com/checadormx/checador-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db, cfg.App.MigrationsDir); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	conceptRepo := postgresql.NewConceptRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := serviceAuth.NewAuthService(cfg.Admin.PasswordHash, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	conceptSvc := conceptService.NewConceptService(conceptRepo)
	punchSvc := attendanceService.NewPunchService(punchRepo, employeeRepo)
	reportSvc := reportService.NewReportService(db, employeeRepo, punchRepo, conceptRepo, justificationRepo, transactionRepo)
	kioskSvc := kioskService.NewKioskService(employeeRepo, punchSvc, cfg.Kiosk.TokenTTL)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, punchRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Concept:    appHTTP.NewConceptHandler(conceptSvc),
		Attendance: appHTTP.NewAttendanceHandler(punchSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Kiosk:      appHTTP.NewKioskHandler(kioskSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

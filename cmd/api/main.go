package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/appdotbuilder/hrd-manager/internal/config"
	appHTTP "github.com/appdotbuilder/hrd-manager/internal/handler/http"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/clock"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/database"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/jwt"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/oauth"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/storage"
	"github.com/appdotbuilder/hrd-manager/internal/repository/postgresql"
	attendanceService "github.com/appdotbuilder/hrd-manager/internal/service/attendance"
	serviceAuth "github.com/appdotbuilder/hrd-manager/internal/service/auth"
	dashboardService "github.com/appdotbuilder/hrd-manager/internal/service/dashboard"
	employeeService "github.com/appdotbuilder/hrd-manager/internal/service/employee"
	leaveService "github.com/appdotbuilder/hrd-manager/internal/service/leave"
	performanceService "github.com/appdotbuilder/hrd-manager/internal/service/performance"
	recruitmentService "github.com/appdotbuilder/hrd-manager/internal/service/recruitment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	postingRepo := postgresql.NewPostingRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	clk := clock.System()

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(userRepo, attendanceRepo, leaveRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, clk, cfg.Attendance.BreakMinutes)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, userRepo, clk)
	reviewSvc := performanceService.NewReviewService(reviewRepo, userRepo, clk)
	recruitmentSvc := recruitmentService.NewRecruitmentService(postingRepo, applicationRepo, fileStorage, clk)
	dashboardSvc := dashboardService.NewDashboardService(
		statsRepo,
		userRepo,
		attendanceRepo,
		leaveRepo,
		reviewRepo,
		applicationRepo,
		clk,
	)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Performance: appHTTP.NewPerformanceHandler(reviewSvc),
		Recruitment: appHTTP.NewRecruitmentHandler(recruitmentSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

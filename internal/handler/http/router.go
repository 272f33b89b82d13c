package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/appdotbuilder/hrd-manager/internal/config"
	"github.com/appdotbuilder/hrd-manager/internal/handler/http/middleware"
	"github.com/appdotbuilder/hrd-manager/internal/handler/http/response"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Performance PerformanceHandler
	Recruitment RecruitmentHandler
	Dashboard   DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrd-manager"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/health-check", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.GoogleCallback)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.GoogleLogin)
				})
			})
		})

		// Public job board, no authentication.
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.Recruitment.ListPublicPostings)
			r.Post("/{id}/apply", h.Recruitment.Apply)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/dashboard", h.Dashboard.Overview)

			r.Route("/employees", func(r chi.Router) {

				// HR and managers
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/", h.Employee.List)
				})

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHr)
					r.Post("/", h.Employee.Create)
					r.Delete("/{id}", h.Employee.Terminate)
				})

				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Clock)
				r.Get("/", h.Attendance.List)
				r.Get("/me", h.Attendance.MyHistory)
				r.Get("/{id}", h.Attendance.History)

				// HR correction path
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHr)
					r.Put("/{id}", h.Attendance.Update)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Get("/balance", h.Leave.Balance)
				r.Get("/{id}", h.Leave.Get)
				r.Post("/{id}/approve", h.Leave.Approve)
				r.Post("/{id}/reject", h.Leave.Reject)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Post("/", h.Performance.Create)
				r.Get("/", h.Performance.List)
				r.Get("/{id}", h.Performance.Get)
				r.Post("/{id}/complete", h.Performance.Complete)
				r.Post("/{id}/acknowledge", h.Performance.Acknowledge)
			})

			// HR only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHr)

				r.Route("/postings", func(r chi.Router) {
					r.Post("/", h.Recruitment.CreatePosting)
					r.Get("/", h.Recruitment.ListPostings)
					r.Get("/{id}", h.Recruitment.GetPosting)
					r.Put("/{id}", h.Recruitment.UpdatePosting)
					r.Delete("/{id}", h.Recruitment.DeletePosting)
				})

				r.Route("/applications", func(r chi.Router) {
					r.Get("/", h.Recruitment.ListApplications)
					r.Put("/{id}/status", h.Recruitment.UpdateApplicationStatus)
				})
			})
		})
	})
	return r
}

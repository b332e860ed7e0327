package http

import (
	"log/slog"
	"os"

	"github.com/checadormx/checador-backend-go/internal/handler/http/middleware"
	"github.com/checadormx/checador-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Concept    ConceptHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Kiosk      KioskHandler
	Dashboard  DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "checador-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Self-service clock terminal, no session required. Punches are
		// authenticated per request by token or PIN.
		r.Route("/kiosk", func(r chi.Router) {
			r.Get("/card/{uuid}", h.Kiosk.Card)
			r.Get("/card/{uuid}/barcode", h.Kiosk.CardBarcode)
			r.Post("/punch", h.Kiosk.Punch)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Post("/{id}/pin", h.Employee.SetPIN)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/concepts", func(r chi.Router) {
				r.Get("/", h.Concept.List)
				r.Post("/", h.Concept.Create)
				r.Get("/{id}", h.Concept.Get)
				r.Put("/{id}", h.Concept.Update)
				r.Delete("/{id}", h.Concept.Delete)
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/reports/prepayroll", func(r chi.Router) {
				r.Get("/", h.Report.Generate)
				r.Post("/transactions", h.Report.SaveTransactions)
				r.Post("/justifications", h.Report.SaveJustifications)
				r.Get("/export", h.Report.ExportCSV)
			})

			r.Get("/dashboard", h.Dashboard.Today)
		})
	})
	return r
}

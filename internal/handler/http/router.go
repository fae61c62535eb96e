package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/tendaops/backoffice-go/internal/config"
	"github.com/tendaops/backoffice-go/internal/handler/http/middleware"
	"github.com/tendaops/backoffice-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	employeeHandler EmployeeHandler,
	timeclockHandler TimeclockHandler,
	holidayHandler HolidayHandler,
	ledgerHandler LedgerHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "backoffice"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/{id}/punches", timeclockHandler.ListEmployeeMonth)
				r.Get("/{id}/ledger", ledgerHandler.ListEmployeeMonth)
				r.Get("/{id}/statement", payrollHandler.GetStatement)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", timeclockHandler.RecordPunch)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", timeclockHandler.DeletePunch)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Create)
					r.Put("/{id}", holidayHandler.Update)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/ledger", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", ledgerHandler.Create)
					r.Delete("/{id}", ledgerHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/run", payrollHandler.Run)
				})
			})
		})
	})
	return r
}

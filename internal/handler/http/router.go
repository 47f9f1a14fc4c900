package http

import (
	"log/slog"
	"os"

	"github.com/gatetrack/gatetrack-backend-go/internal/handler/http/middleware"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	gateHandler GateHandler,
	rosterHandler RosterHandler,
	reportHandler ReportHandler,
	employeeHandler EmployeeHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gatetrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/gate", func(r chi.Router) {
				r.Post("/scan", gateHandler.Scan)
				r.Route("/sessions", func(r chi.Router) {
					r.Get("/open", gateHandler.ListOpenSessions)
					r.Post("/bulk-close", gateHandler.BulkCloseSessions)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/attendance", reportHandler.Build)
				r.Get("/attendance/export", reportHandler.Export)
			})

			r.Get("/employees", employeeHandler.List)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/roster", func(r chi.Router) {
					r.Post("/batch", rosterHandler.UpsertBatch)
					r.Post("/import", rosterHandler.ImportWorkbook)
				})

				r.Delete("/employees/{id}", employeeHandler.Deactivate)
				r.Delete("/admin/data", employeeHandler.PurgeAllData)
			})
		})
	})
	return r
}

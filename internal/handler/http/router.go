package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/holiday-manager/ponto-backend-go/internal/config"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/administrator"
	"github.com/holiday-manager/ponto-backend-go/internal/handler/http/middleware"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
)

func NewRouter(
	appCfg config.AppConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	establishmentHandler EstablishmentHandler,
	employeeHandler EmployeeHandler,
	vacationHandler VacationHandler,
	timeLogHandler TimeLogHandler,
	timeClockHandler TimeClockHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appCfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appCfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appCfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  parseLogLevel(appCfg.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Authenticated by the short-lived ?token= instead of a bearer header
		r.Get("/time-logs/live/stream", timeLogHandler.StreamLivePresence)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireEstablishment)
			r.Use(middleware.RequireManager)

			r.Put("/auth/password", authHandler.ChangePassword)
			r.Get("/auth/sse-token", authHandler.GetSSEToken)

			r.Route("/establishments/my", func(r chi.Router) {
				r.With(middleware.RequirePermission(administrator.PermissionEstablishmentView)).Get("/", establishmentHandler.GetMy)
				r.With(middleware.RequireOwner).Put("/", establishmentHandler.UpdateMy)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(administrator.PermissionEmployeeView))
					r.Get("/", employeeHandler.ListEmployees)
					r.Get("/{id}", employeeHandler.GetEmployee)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(administrator.PermissionEmployeeManage))
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/vacations", func(r chi.Router) {
				r.With(middleware.RequirePermission(administrator.PermissionVacationView)).Get("/", vacationHandler.List)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(administrator.PermissionVacationManage))
					r.Post("/", vacationHandler.Create)
					r.Post("/estimate", vacationHandler.Estimate)
					r.Delete("/{id}", vacationHandler.Delete)
				})
			})

			r.Route("/time-logs", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(administrator.PermissionTimeLogView))
					r.Get("/", timeLogHandler.List)
					r.Get("/timesheet", timeLogHandler.GetTimesheet)
					r.Get("/timesheet/export", timeLogHandler.ExportTimesheet)
					r.Get("/timesheet/share", timeLogHandler.ShareTimesheet)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(administrator.PermissionTimeLogManage))
					r.Post("/", timeLogHandler.Create)
					r.Put("/{id}", timeLogHandler.Update)
					r.Delete("/{id}", timeLogHandler.Delete)
				})

				r.With(middleware.RequirePermission(administrator.PermissionPresenceView)).Get("/live", timeLogHandler.GetLivePresence)
				r.With(middleware.RequirePermission(administrator.PermissionPresenceOverride)).Post("/live/{employeeID}/clock-out", timeLogHandler.ForceClockOut)
			})

			r.Route("/time-clock", func(r chi.Router) {
				r.Post("/punch", timeClockHandler.Punch)
				r.Post("/verify-privileged", timeClockHandler.VerifyPrivileged)
			})

			r.With(middleware.RequirePermission(administrator.PermissionDashboardView)).Get("/dashboard", dashboardHandler.GetDashboard)
		})
	})
	return r
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

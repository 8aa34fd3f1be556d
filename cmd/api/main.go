package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/holiday-manager/ponto-backend-go/internal/config"
	appHTTP "github.com/holiday-manager/ponto-backend-go/internal/handler/http"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/database"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/sse"
	"github.com/holiday-manager/ponto-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/holiday-manager/ponto-backend-go/internal/service/auth"
	dashboardService "github.com/holiday-manager/ponto-backend-go/internal/service/dashboard"
	employeeService "github.com/holiday-manager/ponto-backend-go/internal/service/employee"
	establishmentService "github.com/holiday-manager/ponto-backend-go/internal/service/establishment"
	timeClockService "github.com/holiday-manager/ponto-backend-go/internal/service/timeclock"
	timeLogService "github.com/holiday-manager/ponto-backend-go/internal/service/timelog"
	vacationService "github.com/holiday-manager/ponto-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	// Validated by config.Load
	defaultLocation, _ := time.LoadLocation(cfg.App.DefaultTimezone)

	txManager := postgresql.NewTxManager(db)
	administratorRepo := postgresql.NewAdministratorRepository(db)
	establishmentRepo := postgresql.NewEstablishmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	timeLogRepo := postgresql.NewTimeLogRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()
	payCalculator := vacationService.NewPayCalculator()

	authService := serviceAuth.NewAuthService(
		txManager,
		administratorRepo,
		establishmentRepo,
		employeeRepo,
		JWTService,
		JWTRepository,
		cfg.App.DefaultTimezone,
	)
	establishmentSvc := establishmentService.NewEstablishmentService(establishmentRepo)
	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo, timeLogRepo, cfg.Employee.DeleteKeepsTimeLogs)
	vacationSvc := vacationService.NewVacationService(txManager, vacationRepo, employeeRepo, payCalculator)
	timeLogSvc := timeLogService.NewTimeLogService(timeLogRepo, employeeRepo, establishmentRepo, hub, timeLogService.Options{
		LiveWindow:      cfg.TimeClock.LiveWindow,
		DefaultLocation: defaultLocation,
	})
	timeClockSvc := timeClockService.NewTimeClockService(txManager, employeeRepo, timeLogRepo, hub, cfg.TimeClock.PrivilegedRoles)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, vacationRepo, establishmentRepo, timeLogSvc, payCalculator, defaultLocation)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		appHTTP.NewAuthHandler(JWTService, authService),
		appHTTP.NewEstablishmentHandler(establishmentSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewVacationHandler(vacationSvc),
		appHTTP.NewTimeLogHandler(timeLogSvc, JWTService, hub),
		appHTTP.NewTimeClockHandler(timeClockSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Event streams never finish on their own; the deadline cuts them
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Graceful shutdown incomplete", "error", err)
	}
	slog.Info("Server stopped", "subscribers_dropped", hub.TotalSubscribers())
}

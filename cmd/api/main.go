package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/tendaops/backoffice-go/internal/config"
	appHTTP "github.com/tendaops/backoffice-go/internal/handler/http"
	"github.com/tendaops/backoffice-go/internal/pkg/database"
	"github.com/tendaops/backoffice-go/internal/pkg/jwt"
	"github.com/tendaops/backoffice-go/internal/repository/postgresql"
	employeeService "github.com/tendaops/backoffice-go/internal/service/employee"
	holidayService "github.com/tendaops/backoffice-go/internal/service/holiday"
	ledgerService "github.com/tendaops/backoffice-go/internal/service/ledger"
	payrollService "github.com/tendaops/backoffice-go/internal/service/payroll"
	timeclockService "github.com/tendaops/backoffice-go/internal/service/timeclock"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "backoffice"),
		slog.String("env", cfg.App.Env),
	)

	empService := employeeService.NewEmployeeService(employeeRepo)
	clockService := timeclockService.NewTimeclockService(db, punchRepo, employeeRepo)
	holService := holidayService.NewHolidayService(holidayRepo)
	ledService := ledgerService.NewLedgerService(ledgerRepo, employeeRepo)
	payService := payrollService.NewPayrollService(db, employeeRepo, punchRepo, ledgerRepo, holidayRepo, logger)

	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	timeclockHandler := appHTTP.NewTimeclockHandler(clockService)
	holidayHandler := appHTTP.NewHolidayHandler(holService)
	ledgerHandler := appHTTP.NewLedgerHandler(ledService)
	payrollHandler := appHTTP.NewPayrollHandler(payService)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		employeeHandler,
		timeclockHandler,
		holidayHandler,
		ledgerHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

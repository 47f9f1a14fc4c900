package main

import (
	"fmt"
	"net/http"

	"github.com/gatetrack/gatetrack-backend-go/internal/config"
	appHTTP "github.com/gatetrack/gatetrack-backend-go/internal/handler/http"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/cron"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/database"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/jwt"
	"github.com/gatetrack/gatetrack-backend-go/internal/repository/postgresql"
	employeeService "github.com/gatetrack/gatetrack-backend-go/internal/service/employee"
	gateService "github.com/gatetrack/gatetrack-backend-go/internal/service/gate"
	reportService "github.com/gatetrack/gatetrack-backend-go/internal/service/report"
	rosterService "github.com/gatetrack/gatetrack-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	gateSvc := gateService.NewGateService(db, sessionRepo, employeeRepo, rosterRepo)
	rosterSvc := rosterService.NewRosterService(db, employeeRepo, rosterRepo)
	reportSvc := reportService.NewReportService(employeeRepo, rosterRepo, sessionRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, rosterRepo, sessionRepo)

	gateHandler := appHTTP.NewGateHandler(gateSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	if cfg.Gate.AutoCloseEnabled {
		scheduler := cron.NewScheduler()
		gateJobs := cron.NewGateJobs(sessionRepo, gateSvc, cfg.Gate.AutoCloseAfter)
		gateJobs.RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		JWTService,
		gateHandler,
		rosterHandler,
		reportHandler,
		employeeHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financas-api/internal/config"
	"financas-api/internal/database"
	"financas-api/internal/handlers"
	"financas-api/internal/middleware"
	"financas-api/internal/normalize"
	"financas-api/internal/repositories"
	"financas-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Missing .env is fine, variables may come from the environment
	_ = godotenv.Load()

	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err.Error())
		os.Exit(1)
	}

	// Repositories
	notificationRepo := repositories.NewNotificationRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	ruleRepo := repositories.NewRuleRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	pipeline := normalize.New(pipelineConfig(cfg))

	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, passwordService, tokenService, metrics, logger)
	notificationService := services.NewNotificationService(notificationRepo, metrics, logger)
	categoryService := services.NewCategoryService(categoryRepo, metrics, logger)
	ruleService := services.NewRuleService(ruleRepo, metrics, logger)
	ledgerService := services.NewLedgerService(notificationRepo, ruleRepo, pipeline, metrics, logger)
	exportService := services.NewExportService(ledgerService, logger)

	if err := authService.EnsureOperator(cfg.Operator.Email, cfg.Operator.Password); err != nil {
		logger.Error("Failed to ensure operator account", "error", err.Error())
		os.Exit(1)
	}

	if cfg.Pipeline.SeedSampleData && cfg.IsDevelopment() {
		seedSampleData(notificationRepo, logger)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	ruleHandler := handlers.NewRuleHandler(ruleService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, exportService, metrics)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(metrics)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth(tokenService))

	protected.POST("/notifications", notificationHandler.Ingest)
	protected.GET("/notifications", notificationHandler.List)
	protected.GET("/notifications/:id", notificationHandler.Get)
	protected.PUT("/notifications/:id", notificationHandler.Update)
	protected.DELETE("/notifications/:id", notificationHandler.Delete)

	protected.POST("/categories", categoryHandler.Create)
	protected.GET("/categories", categoryHandler.List)

	protected.POST("/rules", ruleHandler.Create)
	protected.GET("/rules", ruleHandler.List)
	protected.DELETE("/rules/:id", ruleHandler.Delete)

	protected.GET("/ledger", ledgerHandler.GetLedger)
	protected.GET("/ledger/export", ledgerHandler.ExportCSV)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(notificationRepo)
		protected.POST("/dev/generate-data", devHandler.GenerateTestData)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}

// newLogger builds the process-wide logger. JSON in production so log
// collectors can parse it, text locally.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// pipelineConfig applies environment overrides on top of the built-in
// normalization defaults.
func pipelineConfig(cfg *config.Config) normalize.Config {
	pc := normalize.DefaultConfig()
	if len(cfg.Pipeline.InboundKeywords) > 0 {
		pc.InboundKeywords = cfg.Pipeline.InboundKeywords
	}
	if len(cfg.Pipeline.BoilerplateTerms) > 0 {
		pc.BoilerplateTerms = cfg.Pipeline.BoilerplateTerms
	}
	if cfg.Pipeline.DefaultCategory != "" {
		pc.DefaultCategory = cfg.Pipeline.DefaultCategory
	}
	return pc
}

// seedSampleData populates an empty development database with a month
// of generated notifications so the ledger has something to show.
func seedSampleData(repo repositories.NotificationRepositoryInterface, logger *slog.Logger) {
	existing, err := repo.GetAll()
	if err != nil || len(existing) > 0 {
		return
	}

	generator := services.NewSampleGenerator()
	end := time.Now()
	start := end.AddDate(0, -1, 0)

	created := 0
	for _, notification := range generator.GenerateNotifications(50, start, end) {
		if err := repo.Create(notification); err != nil {
			continue
		}
		created++
	}
	logger.Info("Seeded sample notifications", "count", created)
}

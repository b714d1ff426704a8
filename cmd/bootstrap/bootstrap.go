package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-admin/config"
	deliveryHttp "hospital-admin/internal/delivery/http"
	"hospital-admin/internal/delivery/http/handler"
	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/delivery/http/view"
	"hospital-admin/internal/infrastructure/cache"
	"hospital-admin/internal/infrastructure/database"
	"hospital-admin/internal/repository"
	"hospital-admin/internal/service"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/metrics"
	"hospital-admin/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pool
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(cfg.DB, app.Log); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	// Initialize Redis, only when configured
	reportCache := service.NewNoopReportCache()
	if cfg.Redis.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, app.Log)
		cancel()
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		reportCache = service.NewRedisReportCache(redisClient, cfg.Cache.ReportTTL, app.Log)
		app.Log.Info("Redis connected successfully, report cache enabled")
	}

	// Initialize all layers
	server, err := initializeServer(cfg, app.Log, db, app.RedisClient, reportCache)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus standard logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	reportCache service.ReportCache,
) (*http.Server, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	customValidator := validator.NewValidator()
	appMetrics := metrics.NewMetrics("hospital")

	// Initialize repositories
	serviceRepo := repository.NewServiceRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize usecases
	serviceUsecase := usecase.NewServiceUsecase(log, serviceRepo, reportCache)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, reportCache)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, reportCache)
	reportUsecase := usecase.NewReportUsecase(log, reportRepo, reportCache)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, serviceUsecase, customValidator, renderer, appMetrics, log)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, serviceUsecase, customValidator, renderer, appMetrics, log)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator, renderer, appMetrics, log)
	reportHandler := handler.NewReportHandler(reportUsecase, renderer, log)
	healthHandler := handler.NewHealthHandler(healthChecks(db, redisClient)...)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware(appMetrics)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		doctorHandler,
		serviceHandler,
		reportHandler,
		healthHandler,
		loggingMiddleware,
		metricsMiddleware,
		recoveryMiddleware,
		appMetrics,
	)
	httpRouter := router.Setup()

	// Create server
	return &http.Server{
		Addr:         net.JoinHostPort("0.0.0.0", cfg.App.Port),
		Handler:      httpRouter,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}, nil
}

func healthChecks(db *gorm.DB, redisClient *redis.Client) []handler.HealthCheck {
	checks := []handler.HealthCheck{{
		Name: "database",
		Check: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}

	if redisClient != nil {
		checks = append(checks, handler.HealthCheck{
			Name: "redis",
			Check: func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		})
	}

	return checks
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on %s", app.Server.Addr)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

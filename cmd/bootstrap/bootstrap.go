package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-replica-sync/config"
	"hospital-replica-sync/internal/delivery/dto"
	deliveryHttp "hospital-replica-sync/internal/delivery/http"
	"hospital-replica-sync/internal/delivery/http/handler"
	"hospital-replica-sync/internal/delivery/http/middleware"
	"hospital-replica-sync/internal/domain/entity"
	"hospital-replica-sync/internal/infrastructure/cache"
	"hospital-replica-sync/internal/infrastructure/database"
	"hospital-replica-sync/internal/infrastructure/source"
	"hospital-replica-sync/internal/metrics"
	"hospital-replica-sync/internal/repository"
	"hospital-replica-sync/internal/service"
	"hospital-replica-sync/internal/tracing"
	"hospital-replica-sync/internal/usecase"
	"hospital-replica-sync/pkg/jwt"
	"hospital-replica-sync/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const serviceRole = "replica"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Registry    *prometheus.Registry
	SyncUsecase usecase.SyncUsecase
	Server      *http.Server

	shutdownTracing tracing.ShutdownFunc
}

// Load reads the configuration and sets up the logger from it.
func Load() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	return cfg, log, nil
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context) (*App, error) {
	cfg, log, err := Load()
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Log: log}

	// Initialize tracing
	shutdown, err := tracing.Init(ctx, cfg.Tracing, log)
	if err != nil {
		return nil, err
	}
	app.shutdownTracing = shutdown

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, log); err != nil {
			app.Close()
			return nil, err
		}
	}

	// Initialize Redis. The status cache is optional: without it the
	// status endpoint answers 503 and sync runs are unaffected.
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warnf("Failed to connect to Redis, sync status cache disabled: %+v", err)
		} else {
			app.RedisClient = redisClient
			log.Info("Redis connected successfully")
		}
	}

	// Initialize metrics
	app.Registry = prometheus.NewRegistry()
	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.Register(app.Registry); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	// Initialize all layers
	app.Server = app.initializeServer()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return logrus.StandardLogger()
}

// initializeServer wires every layer and creates the HTTP server
func (app *App) initializeServer() *http.Server {
	cfg := app.Config
	log := app.Log

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Auth)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize source client
	sourceClient := source.NewClient(cfg.Source, log)

	// Initialize repositories
	replicaRepo := repository.NewReplicaRepository(app.DB)
	departmentRepo := repository.NewDepartmentRepository()
	physicianRepo := repository.NewPhysicianRepository()
	consultationRepo := repository.NewConsultationRepository()
	syncRunRepo := repository.NewSyncRunRepository()

	// Initialize services
	auditService := service.NewSyncAuditService(app.DB, log, syncRunRepo)
	statusService := service.NewSyncStatusService(app.RedisClient, cfg.Redis.TTL, log)

	// Initialize usecases
	app.SyncUsecase = usecase.NewSyncUsecase(log, sourceClient, replicaRepo, customValidator, auditService, statusService)
	syncRunUsecase := usecase.NewSyncRunUsecase(app.DB, log, syncRunRepo)
	replicaUsecase := usecase.NewReplicaUsecase(app.DB, log, departmentRepo, physicianRepo, consultationRepo, customValidator)

	// Initialize handlers
	syncHandler := handler.NewSyncHandler(app.SyncUsecase, syncRunUsecase, customValidator)
	replicaHandler := handler.NewReplicaHandler(replicaUsecase)
	infoHandler := handler.NewInfoHandler(dto.ServiceInfo{
		Service: cfg.Tracing.ServiceName,
		Version: cfg.App.Version,
		Role:    serviceRole,
		Source:  sourceClient.BaseURL(),
		Tables:  entity.TableNames(),
	})

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	if !jwtService.Enabled() {
		log.Warn("AUTH_SECRET is empty: sync endpoint is not protected")
	}

	// Initialize router
	router := deliveryHttp.NewRouter(
		syncHandler,
		replicaHandler,
		infoHandler,
		metrics.Handler(app.Registry),
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		app.Log.Infof("Source API: %s", app.Config.Source.BaseURL)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// Close closes all connections (database, redis, tracer)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	// Flush pending spans
	if app.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.shutdownTracing(ctx); err != nil {
			app.Log.Warnf("Failed to shutdown tracing: %+v", err)
		}
	}
}

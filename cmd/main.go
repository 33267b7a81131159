package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/montagezeit/reminder-engine/internal/app"
	"github.com/montagezeit/reminder-engine/internal/config"
	"github.com/montagezeit/reminder-engine/internal/infra/handler"
	"github.com/montagezeit/reminder-engine/internal/infra/location"
	"github.com/montagezeit/reminder-engine/internal/infra/pubsub"
	"github.com/montagezeit/reminder-engine/internal/infra/repository"
	"github.com/montagezeit/reminder-engine/internal/infra/scheduler"
	"github.com/montagezeit/reminder-engine/internal/observability/logging"
	"github.com/montagezeit/reminder-engine/internal/observability/metrics"
	"github.com/montagezeit/reminder-engine/internal/observability/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize publisher", "error", err)
		os.Exit(1)
	}

	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Error("failed to close publisher", "error", err)
			}
		}()
	}

	clock := app.SystemClock()

	settingsProvider := repository.NewSettingsProvider(db)
	dedupStore := repository.NewDedupStore(db)
	postponeLimiter := repository.NewPostponeLimiter(db)
	workEntryRepo := repository.NewWorkEntryRepository(db)

	alertDispatcher := pubsub.NewAlertDispatcher(publisher)

	jobScheduler := scheduler.NewGormJobScheduler(db)

	orchestrator := app.NewReminderOrchestrator(settingsProvider, jobScheduler, clock)
	engine := app.NewWindowCheckEngine(settingsProvider, workEntryRepo, dedupStore, alertDispatcher, clock)
	postponer := app.NewReminderPostponer(settingsProvider, postponeLimiter, jobScheduler, alertDispatcher, clock)
	acquirer := app.NewLocationAcquirer(initPositionProvider(cfg), clock)

	// Recover job registrations on boot; jobs survive restarts in Postgres
	// but a fresh deployment starts with an empty table.
	if err := orchestrator.ScheduleAll(ctx); err != nil {
		slog.Error("failed to schedule reminder jobs on boot", "error", err)
		os.Exit(1)
	}

	runner := scheduler.NewRunner(db, engine, postponer, cfg.Scheduler.Tick)
	go runner.Start(ctx)

	reminderHandler := handler.NewReminderHandler(orchestrator, postponer, acquirer)

	router := setupRouter(reminderHandler)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server", "address", cfg.Server.Address())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(200 * time.Millisecond),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(
		&repository.ReminderFlagModel{},
		&repository.PostponeCountModel{},
		&repository.WorkEntryModel{},
		&repository.ReminderSettingsModel{},
		&scheduler.JobModel{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.AlertPublisher, error) {
	if cfg.PubSub.NatsURL == "" {
		slog.Warn("NATS_URL not set, alert publishing disabled")

		return nil, nil
	}

	publisher, err := pubsub.NewNATSAlertPublisherWithStream(ctx, pubsub.NATSPublisherConfig{
		URL: cfg.PubSub.NatsURL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized", "url", cfg.PubSub.NatsURL)

	return publisher, nil
}

func initPositionProvider(cfg *config.Config) app.PositionProvider {
	if cfg.Location.StaticEnabled {
		slog.Info("using static position provider",
			"lat", cfg.Location.StaticLat,
			"lon", cfg.Location.StaticLon,
			"accuracy_m", cfg.Location.StaticAccuracyMeters,
		)

		return location.NewStaticProvider(location.StaticProviderConfig{
			Lat:            cfg.Location.StaticLat,
			Lon:            cfg.Location.StaticLon,
			AccuracyMeters: cfg.Location.StaticAccuracyMeters,
		})
	}

	return location.NewUnavailableProvider()
}

func setupRouter(reminderHandler *handler.ReminderHandler) *gin.Engine {
	router := gin.New()

	httpMetrics, err := metrics.NewHTTPMetrics("reminder-engine")
	if err != nil {
		slog.Warn("failed to initialize HTTP metrics", "error", err)
	}

	router.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/ping"},
		Module:      logging.ModuleHTTP,
		TracerName:  "reminder-engine",
		HTTPMetrics: httpMetrics,
	}))
	router.Use(middleware.PanicRecoveryGin())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	reminderHandler.RegisterRoutes(v1)

	return router
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"church_sync/internal/config"
	"church_sync/internal/publisher"
	"church_sync/internal/scheduler"
	"church_sync/internal/server"
	"church_sync/internal/service"
	"church_sync/internal/source/drive"
	"church_sync/internal/source/youtube"
	"church_sync/internal/storage/blob"
	"church_sync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// The broker is optional: without it the service still syncs, it just
	// stops announcing new content.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	} else {
		logger.Warn("rabbitmq not configured, content events disabled")
	}

	// Initialize stores
	sermonStore := postgres.NewSermonStore(db)
	bulletinStore := postgres.NewBulletinStore(db)
	syncStateStore := postgres.NewSyncStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize external sources
	youtubeSource := youtube.New(youtube.Config{
		BaseURL:        cfg.YouTube.BaseURL,
		APIKey:         cfg.YouTube.APIKey,
		PageSize:       cfg.YouTube.PageSize,
		Timeout:        cfg.YouTube.Timeout,
		MaxAttempts:    cfg.YouTube.Retry.MaxAttempts,
		InitialBackoff: cfg.YouTube.Retry.InitialBackoff,
		MaxBackoff:     cfg.YouTube.Retry.MaxBackoff,
	}, logger)

	driveSource := drive.New(drive.Config{
		BaseURL:        cfg.Drive.BaseURL,
		APIKey:         cfg.Drive.APIKey,
		PageSize:       cfg.Drive.PageSize,
		Timeout:        cfg.Drive.Timeout,
		MaxAttempts:    cfg.Drive.Retry.MaxAttempts,
		InitialBackoff: cfg.Drive.Retry.InitialBackoff,
		MaxBackoff:     cfg.Drive.Retry.MaxBackoff,
	}, logger)

	blobClient := blob.NewClient(blob.Config{
		BaseURL: cfg.Blob.BaseURL,
		APIKey:  cfg.Blob.APIKey,
		Timeout: cfg.Blob.Timeout,
	}, logger)

	// Create services
	sermonSync := service.NewSermonSyncService(
		youtubeSource,
		sermonStore,
		syncStateStore,
		pub,
		logger,
		cfg.YouTube.Playlists,
	)

	bulletinSync := service.NewBulletinSyncService(
		driveSource,
		bulletinStore,
		syncStateStore,
		pub,
		logger,
		cfg.Drive.FolderID,
	)

	listing := service.NewListingService(sermonStore, bulletinStore)

	admin := service.NewAdminService(
		sermonStore,
		bulletinStore,
		syncStateStore,
		txManager,
		blobClient,
		pub,
		logger,
		cfg.Blob.Bucket,
	)

	srv := server.New(sermonSync, bulletinSync, listing, admin, logger, server.Config{
		Addr:       cfg.Server.Addr,
		AdminToken: cfg.Server.AdminToken,
		CORSOrigin: cfg.Server.CORSOrigin,
	})

	sched := scheduler.NewScheduler(
		[]scheduler.Syncer{sermonSync, bulletinSync},
		cfg.Sync.Interval,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(ctx)
	}()

	logger.Info("starting content syncer",
		"playlists", len(cfg.YouTube.Playlists),
		"interval", cfg.Sync.Interval,
		"addr", cfg.Server.Addr,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}

	if err := <-errCh; err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	user_client "blog-service/internal/clients/user"
	"blog-service/internal/config"
	delivery_http "blog-service/internal/delivery/http"
	blog_http "blog-service/internal/delivery/http/blog"
	metrics_server "blog-service/internal/delivery/metrics"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	prometheus_metrics "blog-service/internal/metrics/prometheus"
	"blog-service/internal/migrator"
	blog_repository "blog-service/internal/repository/blog"
	"blog-service/internal/repository/blog/memory"
	blog_repository_postgres "blog-service/internal/repository/blog/postgres"
	blog_service "blog-service/internal/service/blog"
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and metrics servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on startup")
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.New(cfg.Env)
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	blogRepo, closeStore, err := newBlogRepository(ctx, cfg, log, metrics)
	if err != nil {
		return err
	}
	defer closeStore()

	userClient := user_client.NewUserClient(cfg.UserService.BaseURL, cfg.UserService.Timeout, log, metrics)
	blogService := blog_service.NewBlogService(blogRepo, log, userClient, metrics)

	httpServer := delivery_http.NewServer(blog_http.NewBlogHandler(blogService, log), cfg.HTTPServer, log, metrics)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	metrics.SetServiceHealth(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
			quit <- syscall.SIGTERM
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
	return nil
}

func newBlogRepository(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) (blog_repository.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn("Using in-memory blog storage, data is lost on restart")
		return memory.NewBlogRepository(log), func() {}, nil
	case config.StorageDriverPostgres:
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if !skipMigrations {
		if err := migrateUp(cfg, log); err != nil {
			return nil, nil, err
		}
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("parse postgres pool config: %w", err)
	}
	if cfg.Database.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Database.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	log.Info("Connected to postgres", slog.String("host", cfg.Database.Host), slog.String("db", cfg.Database.DbName))
	return blog_repository_postgres.NewBlogRepository(pool, log, metrics), pool.Close, nil
}

func migrateUp(cfg *config.Config, log *logger.Logger) error {
	m, err := migrator.New(cfg.Database.MigrationsPath, cfg.Database.DSN(), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Error("Failed to close migrator", slog.String("error", err.Error()))
		}
	}()
	return m.Up()
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/buildmate/quote-service/internal/adapter/event"
	"github.com/buildmate/quote-service/internal/adapter/handler"
	"github.com/buildmate/quote-service/internal/adapter/storage"
	"github.com/buildmate/quote-service/internal/config"
	"github.com/buildmate/quote-service/internal/core/domain"
	"github.com/buildmate/quote-service/internal/core/pdf"
	"github.com/buildmate/quote-service/internal/core/service"
	"github.com/buildmate/quote-service/internal/port"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog, err := buildCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("catalog initialization failed")
	}

	sequence, closeSequence := buildSequence(ctx, cfg, logger)
	defer closeSequence()

	publisher := buildPublisher(cfg, logger)
	defer publisher.Close()

	quoteService := service.NewQuoteService(catalog, sequence, publisher, logger)
	renderer := pdf.NewRenderer(cfg.FontPath)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	handler.NewHTTPHandler(quoteService, renderer, logger).Register(e)
	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()
	logger.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown error")
	}
	logger.Info().Msg("http server stopped")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}

// buildCatalog prefers a MySQL-backed load when a DSN is configured;
// either way the returned catalog is a fixed in-memory snapshot and
// the database is not used after startup.
func buildCatalog(ctx context.Context, cfg config.Config, logger zerolog.Logger) (port.CatalogRepository, error) {
	if cfg.MySQLDSN == "" {
		logger.Info().Msg("using built-in catalog data")
		return storage.NewMemoryCatalog(domain.DefaultCatalogData()), nil
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	catalog, err := storage.LoadMySQLCatalog(ctx, db)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("products", len(catalog.Products())).Msg("catalog loaded from mysql")
	return catalog, nil
}

func buildSequence(ctx context.Context, cfg config.Config, logger zerolog.Logger) (port.SequenceRepository, func()) {
	if cfg.RedisAddr == "" {
		return storage.NewMemorySequence(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, using in-memory quote sequence")
		rdb.Close()
		return storage.NewMemorySequence(), func() {}
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("redis quote sequence enabled")
	return storage.NewRedisSequence(rdb), func() { rdb.Close() }
}

func buildPublisher(cfg config.Config, logger zerolog.Logger) port.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return event.NoopPublisher{}
	}
	logger.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("kafka quote events enabled")
	return event.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}

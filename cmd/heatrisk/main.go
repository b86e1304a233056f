package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/heat-risk-service/internal/adapter/http"
	"github.com/couchcryptid/heat-risk-service/internal/adapter/filestore"
	kafkaadapter "github.com/couchcryptid/heat-risk-service/internal/adapter/kafka"
	"github.com/couchcryptid/heat-risk-service/internal/adapter/openweather"
	"github.com/couchcryptid/heat-risk-service/internal/config"
	"github.com/couchcryptid/heat-risk-service/internal/domain"
	"github.com/couchcryptid/heat-risk-service/internal/observability"
	"github.com/couchcryptid/heat-risk-service/internal/service"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	metrics := observability.NewMetrics()

	// Weather provider: demo data without an API key, otherwise the cached live client.
	var weather domain.WeatherProvider
	if cfg.WeatherDemoMode {
		weather = openweather.NewDemoProvider()
		metrics.DemoMode.Set(1)
		logger.Info("weather demo mode enabled")
	} else {
		client := openweather.NewClient(openweather.Options{
			APIKey:  cfg.OpenWeatherAPIKey,
			BaseURL: cfg.OpenWeatherBaseURL,
			Timeout: cfg.OpenWeatherTimeout,
			RPS:     cfg.WeatherRateLimit,
			Burst:   cfg.WeatherRateBurst,
		}, metrics, logger)
		weather = openweather.NewCachedProvider(client, cfg.WeatherCacheSize, cfg.WeatherCacheTTL, nil, metrics)
		logger.Info("openweathermap enabled",
			"cache_size", cfg.WeatherCacheSize,
			"cache_ttl", cfg.WeatherCacheTTL,
			"rate_limit", cfg.WeatherRateLimit,
		)
	}

	store, err := filestore.New(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open data dir", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	// Submission events are feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS.
	var publisher service.Publisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg.KafkaBrokers, cfg.KafkaSubmissionsTopic, logger)
		publisher = kafkaPublisher
		logger.Info("kafka submission events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSubmissionsTopic)
	} else {
		logger.Info("kafka submission events disabled")
	}

	risk := service.NewRisk(weather, cfg.WeatherDemoMode, nil, metrics, logger)
	subs := service.NewSubmissions(store, publisher, metrics, logger)

	srv := httpadapter.NewServer(httpadapter.Options{
		Addr:              cfg.HTTPAddr,
		FrontendURL:       cfg.FrontendURL,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
	}, risk, subs, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// newLogger builds the service logger and installs it as the slog default.
func newLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
}

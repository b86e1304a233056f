package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// demoAPIKey is the placeholder key that, like an empty key, selects demo mode.
const demoAPIKey = "demo_key"

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	FrontendURL     string
	DataDir         string

	// Inbound rate limiting on /api/ routes, per client IP.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// OpenWeatherMap configuration.
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenWeatherTimeout time.Duration
	WeatherDemoMode    bool
	WeatherRateLimit   float64
	WeatherRateBurst   int
	WeatherCacheSize   int
	WeatherCacheTTL    time.Duration

	// Kafka submission events.
	KafkaEnabled          bool
	KafkaBrokers          []string
	KafkaSubmissionsTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	rateLimitWindow, err := parsePositiveDuration("RATE_LIMIT_WINDOW", "15m")
	if err != nil {
		return nil, err
	}
	rateLimitRequests, err := parsePositiveInt("RATE_LIMIT_REQUESTS", 100)
	if err != nil {
		return nil, err
	}

	owTimeout, err := parsePositiveDuration("OPENWEATHER_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parsePositiveDuration("WEATHER_CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}
	cacheSize, err := parsePositiveInt("WEATHER_CACHE_SIZE", 500)
	if err != nil {
		return nil, err
	}
	rateBurst, err := parsePositiveInt("WEATHER_RATE_BURST", 5)
	if err != nil {
		return nil, err
	}
	rateLimit, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("WEATHER_RATE_LIMIT", "1"), 64)
	if err != nil || rateLimit <= 0 {
		return nil, errors.New("invalid WEATHER_RATE_LIMIT")
	}

	apiKey := os.Getenv("OPENWEATHER_API_KEY")

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":3001"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		FrontendURL:     sharedcfg.EnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		DataDir:         sharedcfg.EnvOrDefault("DATA_DIR", "data"),

		RateLimitRequests: rateLimitRequests,
		RateLimitWindow:   rateLimitWindow,

		OpenWeatherAPIKey:  apiKey,
		OpenWeatherBaseURL: sharedcfg.EnvOrDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		OpenWeatherTimeout: owTimeout,
		WeatherDemoMode:    apiKey == "" || apiKey == demoAPIKey,
		WeatherRateLimit:   rateLimit,
		WeatherRateBurst:   rateBurst,
		WeatherCacheSize:   cacheSize,
		WeatherCacheTTL:    cacheTTL,

		KafkaEnabled:          kafkaEnabled,
		KafkaBrokers:          brokers,
		KafkaSubmissionsTopic: sharedcfg.EnvOrDefault("KAFKA_SUBMISSIONS_TOPIC", "heat-risk-submissions"),
	}

	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaSubmissionsTopic == "" {
		return nil, errors.New("KAFKA_SUBMISSIONS_TOPIC is required")
	}

	return cfg, nil
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

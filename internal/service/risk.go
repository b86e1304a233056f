package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	"github.com/couchcryptid/heat-risk-service/internal/observability"
)

// Risk answers heat-risk questions for raw readings and live weather.
type Risk struct {
	weather domain.WeatherProvider
	demo    bool
	metrics *observability.Metrics
	logger  *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRisk creates a Risk service. demo marks reports built from the demo
// provider. A nil rng seeds one from the runtime.
func NewRisk(weather domain.WeatherProvider, demo bool, rng *rand.Rand, metrics *observability.Metrics, logger *slog.Logger) *Risk {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Risk{
		weather: weather,
		demo:    demo,
		metrics: metrics,
		logger:  logger,
		rng:     rng,
	}
}

// Assess classifies a raw temperature/humidity pair.
func (s *Risk) Assess(temperature, humidity float64) (domain.Assessment, error) {
	r, err := domain.NewReading(temperature, humidity)
	if err != nil {
		return domain.Assessment{}, err
	}
	a := domain.Assess(r)
	s.metrics.RiskAssessments.WithLabelValues(string(a.RiskLevel)).Inc()
	return a, nil
}

// CurrentRisk fetches current conditions and assesses them.
func (s *Risk) CurrentRisk(ctx context.Context, q domain.LocationQuery) (domain.RiskReport, error) {
	cond, err := s.weather.Current(ctx, q)
	if err != nil {
		return domain.RiskReport{}, fmt.Errorf("current weather for %s: %w", q, err)
	}

	a, err := s.Assess(cond.Temperature, cond.Humidity)
	if err != nil {
		// Upstream returned a reading we cannot classify.
		return domain.RiskReport{}, fmt.Errorf("weather for %s: %w: %w", q, domain.ErrUpstreamUnavailable, err)
	}

	s.logger.Debug("risk assessed",
		"location", cond.Location,
		"heat_index", domain.Round1(a.HeatIndex),
		"risk_level", a.RiskLevel,
	)
	return domain.RiskReport{
		Conditions:  cond,
		Assessment:  a,
		Areas:       domain.EstimateAreas(cond),
		Demo:        s.demo,
		GeneratedAt: domain.Now(),
	}, nil
}

// ForecastRisk fetches a forecast and classifies its leading steps.
func (s *Risk) ForecastRisk(ctx context.Context, q domain.LocationQuery) (domain.ForecastReport, error) {
	f, err := s.weather.Forecast(ctx, q)
	if err != nil {
		return domain.ForecastReport{}, fmt.Errorf("forecast for %s: %w", q, err)
	}
	report := domain.BuildForecastReport(f)
	for _, step := range report.Forecast {
		s.metrics.RiskAssessments.WithLabelValues(string(step.RiskLevel)).Inc()
	}
	return report, nil
}

// Dashboard builds a synthetic dashboard covering the given number of days.
func (s *Risk) Dashboard(days int, location string) domain.Dashboard {
	if location == "" {
		location = "metro-area"
	}

	s.mu.Lock()
	historical := domain.GenerateHistorical(days, domain.Now(), s.rng)
	affected := 125000 + s.rng.IntN(50000)
	s.mu.Unlock()

	return domain.BuildDashboard(location, days, historical, affected)
}

// Mitigation returns the strategy plan for a tier. A nil horizon selects
// every horizon.
func (s *Risk) Mitigation(level domain.RiskLevel, horizon *domain.Horizon) domain.MitigationPlan {
	return domain.BuildMitigationPlan(level, horizon)
}

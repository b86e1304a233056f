package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	"github.com/couchcryptid/heat-risk-service/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RiskService answers heat-risk queries.
type RiskService interface {
	Assess(temperature, humidity float64) (domain.Assessment, error)
	CurrentRisk(ctx context.Context, q domain.LocationQuery) (domain.RiskReport, error)
	ForecastRisk(ctx context.Context, q domain.LocationQuery) (domain.ForecastReport, error)
	Dashboard(days int, location string) domain.Dashboard
	Mitigation(level domain.RiskLevel, horizon *domain.Horizon) domain.MitigationPlan
}

// SubmissionService stores contact and feedback forms. It also gates /readyz.
type SubmissionService interface {
	SubmitContact(ctx context.Context, in domain.ContactInput) (domain.Contact, error)
	SubmitFeedback(ctx context.Context, in domain.FeedbackInput) (domain.Feedback, error)
	Contacts(ctx context.Context) ([]domain.Contact, error)
	Feedback(ctx context.Context) ([]domain.Feedback, error)
	Stats(ctx context.Context) (domain.SubmissionStats, error)
	UpdateContactStatus(ctx context.Context, id, status string) (domain.Contact, error)
	CheckReadiness(ctx context.Context) error
}

// Options configures the HTTP surface.
type Options struct {
	Addr        string
	FrontendURL string
	// RateLimitRequests per RateLimitWindow are allowed for each client IP
	// on /api/ routes. Zero disables limiting.
	RateLimitRequests int
	RateLimitWindow   time.Duration
	// Clock drives rate limit refill and sweeps. Nil uses the real clock.
	Clock clockwork.Clock
}

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 10 << 20

// Server exposes the heat risk API alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	risk       RiskService
	subs       SubmissionService
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the API and operational routes.
func NewServer(opts Options, risk RiskService, subs SubmissionService, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		risk:    risk,
		subs:    subs,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(subs))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/health", s.handleAPIHealth)
	mux.HandleFunc("GET /api/heat-index", s.handleHeatIndex)
	mux.HandleFunc("GET /api/weather", s.handleWeather)
	mux.HandleFunc("GET /api/weather/forecast", s.handleForecast)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	mux.HandleFunc("GET /api/mitigation", s.handleMitigation)
	mux.HandleFunc("GET /api/mitigation/strategies", s.handleStrategies)
	mux.HandleFunc("GET /api/mitigation/tips", s.handleTips)
	mux.HandleFunc("GET /api/mitigation/resources", s.handleResources)

	mux.HandleFunc("POST /api/contact", s.handleSubmitContact)
	mux.HandleFunc("GET /api/contact", s.handleListContacts)
	mux.HandleFunc("POST /api/contact/feedback", s.handleSubmitFeedback)
	mux.HandleFunc("GET /api/contact/feedback", s.handleListFeedback)
	mux.HandleFunc("GET /api/contact/stats", s.handleStats)
	mux.HandleFunc("PUT /api/contact/{id}/status", s.handleUpdateContactStatus)

	mux.HandleFunc("/", handleNotFound)

	var limiter *ipRateLimiter
	if opts.RateLimitRequests > 0 && opts.RateLimitWindow > 0 {
		limiter = newIPRateLimiter(opts.RateLimitRequests, opts.RateLimitWindow, opts.Clock)
	}

	var h http.Handler = mux
	h = limitBody(h, maxBodyBytes)
	h = rateLimit(h, limiter, metrics)
	h = instrument(h, metrics, logger)
	h = cors(opts.FrontendURL)(h)
	h = securityHeaders(h)
	h = recoverPanics(logger)(h)

	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleAPIHealth(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": domain.Now(),
	})
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusNotFound, errorBody{Error: "Route not found"})
}

package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	"github.com/couchcryptid/heat-risk-service/internal/observability"
	"github.com/couchcryptid/heat-risk-service/internal/service"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockWeather struct {
	conditions domain.Conditions
	forecast   domain.Forecast
	err        error
}

func (m *mockWeather) Current(_ context.Context, _ domain.LocationQuery) (domain.Conditions, error) {
	return m.conditions, m.err
}

func (m *mockWeather) Forecast(_ context.Context, _ domain.LocationQuery) (domain.Forecast, error) {
	return m.forecast, m.err
}

type memStore struct {
	mu       sync.Mutex
	contacts []domain.Contact
	feedback []domain.Feedback
	err      error
	pingErr  error
}

func (m *memStore) AddContact(_ context.Context, c domain.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.contacts = append(m.contacts, c)
	return nil
}

func (m *memStore) ListContacts(_ context.Context) ([]domain.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.contacts), m.err
}

func (m *memStore) UpdateContactStatus(_ context.Context, id string, status domain.ContactStatus) (domain.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contacts {
		if m.contacts[i].ID == id {
			now := domain.Now()
			m.contacts[i].Status = status
			m.contacts[i].UpdatedAt = &now
			return m.contacts[i], nil
		}
	}
	return domain.Contact{}, domain.ErrNotFound
}

func (m *memStore) AddFeedback(_ context.Context, f domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.feedback = append(m.feedback, f)
	return nil
}

func (m *memStore) ListFeedback(_ context.Context) ([]domain.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.feedback), m.err
}

func (m *memStore) Ping(_ context.Context) error { return m.pingErr }

type mockPublisher struct {
	events []domain.SubmissionEvent
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, e domain.SubmissionEvent) error {
	m.events = append(m.events, e)
	return m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func freezeClock(t *testing.T) *clockwork.FakeClock {
	t.Helper()
	fake := clockwork.NewFakeClockAt(time.Date(2026, time.July, 14, 15, 0, 0, 0, time.UTC))
	domain.SetClock(fake)
	t.Cleanup(func() { domain.SetClock(nil) })
	return fake
}

// --- Risk ---

func TestRisk_Assess(t *testing.T) {
	m := observability.NewMetricsForTesting()
	s := service.NewRisk(&mockWeather{}, false, nil, m, discardLogger())

	a, err := s.Assess(35.5, 65)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskExtreme, a.RiskLevel)
	assert.InDelta(t, 49.27, a.HeatIndex, 0.01)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RiskAssessments.WithLabelValues("extreme")), 0)
}

func TestRisk_Assess_InvalidInput(t *testing.T) {
	s := service.NewRisk(&mockWeather{}, false, nil, observability.NewMetricsForTesting(), discardLogger())

	_, err := s.Assess(30, 120)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRisk_CurrentRisk(t *testing.T) {
	clk := freezeClock(t)
	w := &mockWeather{conditions: domain.Conditions{Location: "Austin, US", Temperature: 27, Humidity: 40}}
	s := service.NewRisk(w, true, nil, observability.NewMetricsForTesting(), discardLogger())

	report, err := s.CurrentRisk(context.Background(), domain.LocationQuery{City: "Austin"})
	require.NoError(t, err)

	assert.Equal(t, "Austin, US", report.Conditions.Location)
	assert.Equal(t, domain.RiskLow, report.Assessment.RiskLevel)
	assert.True(t, report.Demo)
	assert.Len(t, report.Areas, 4)
	assert.Equal(t, clk.Now().UTC(), report.GeneratedAt)
}

func TestRisk_CurrentRisk_ProviderError(t *testing.T) {
	w := &mockWeather{err: domain.ErrUpstreamRateLimited}
	s := service.NewRisk(w, false, nil, observability.NewMetricsForTesting(), discardLogger())

	_, err := s.CurrentRisk(context.Background(), domain.LocationQuery{City: "Austin"})
	assert.ErrorIs(t, err, domain.ErrUpstreamRateLimited)
	assert.ErrorContains(t, err, "current weather for Austin")
}

func TestRisk_CurrentRisk_UnclassifiableReading(t *testing.T) {
	w := &mockWeather{conditions: domain.Conditions{Temperature: 30, Humidity: 140}}
	s := service.NewRisk(w, false, nil, observability.NewMetricsForTesting(), discardLogger())

	_, err := s.CurrentRisk(context.Background(), domain.LocationQuery{City: "Austin"})
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestRisk_ForecastRisk(t *testing.T) {
	entries := make([]domain.ForecastEntry, 8)
	for i := range entries {
		entries[i] = domain.ForecastEntry{Temperature: 30 + float64(i), Humidity: 40}
	}
	w := &mockWeather{forecast: domain.Forecast{Location: "Austin, US", Entries: entries}}
	m := observability.NewMetricsForTesting()
	s := service.NewRisk(w, false, nil, m, discardLogger())

	report, err := s.ForecastRisk(context.Background(), domain.LocationQuery{City: "Austin"})
	require.NoError(t, err)
	require.Len(t, report.Forecast, domain.ForecastSteps)
	assert.Equal(t, "Austin, US", report.Location)
	assert.Equal(t, 30.0, report.Forecast[0].Temperature)
}

func TestRisk_Dashboard_DeterministicWithSeed(t *testing.T) {
	freezeClock(t)
	newSvc := func() *service.Risk {
		return service.NewRisk(&mockWeather{}, false, rand.New(rand.NewPCG(7, 7)), observability.NewMetricsForTesting(), discardLogger())
	}

	d1 := newSvc().Dashboard(30, "")
	d2 := newSvc().Dashboard(30, "")

	assert.Empty(t, cmp.Diff(d1, d2))
	assert.Equal(t, "metro-area", d1.Location)
	assert.Len(t, d1.Historical, 31)
	assert.GreaterOrEqual(t, d1.Summary.AffectedPopulation, 125000)
	assert.Less(t, d1.Summary.AffectedPopulation, 175000)
}

func TestRisk_Dashboard_Concurrent(t *testing.T) {
	s := service.NewRisk(&mockWeather{}, false, nil, observability.NewMetricsForTesting(), discardLogger())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := s.Dashboard(7, "Phoenix")
			assert.Len(t, d.Historical, 8)
		}()
	}
	wg.Wait()
}

func TestRisk_Mitigation(t *testing.T) {
	s := service.NewRisk(&mockWeather{}, false, nil, observability.NewMetricsForTesting(), discardLogger())
	h := domain.HorizonImmediate

	plan := s.Mitigation(domain.RiskExtreme, &h)
	assert.Equal(t, "immediate", plan.Category)
	assert.Equal(t, 4, plan.Summary.TotalStrategies)
	assert.Equal(t, 2, plan.Summary.UrgentActions)
}

// --- Submissions ---

func TestSubmissions_SubmitContact_PublishesEvent(t *testing.T) {
	freezeClock(t)
	store := &memStore{}
	pub := &mockPublisher{}
	m := observability.NewMetricsForTesting()
	s := service.NewSubmissions(store, pub, m, discardLogger())

	c, err := s.SubmitContact(context.Background(), domain.ContactInput{Name: "Ada", Email: "ada@example.org", Message: "Need a cooling center"})
	require.NoError(t, err)

	require.Len(t, store.contacts, 1)
	assert.Equal(t, c.ID, store.contacts[0].ID)
	require.Len(t, pub.events, 1)
	assert.Equal(t, domain.KindContact, pub.events[0].Kind)
	assert.Equal(t, c.ID, pub.events[0].ID)
	assert.Equal(t, c.Timestamp, pub.events[0].SubmittedAt)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Submissions.WithLabelValues("contact")), 0)
}

func TestSubmissions_SubmitContact_Invalid(t *testing.T) {
	store := &memStore{}
	pub := &mockPublisher{}
	s := service.NewSubmissions(store, pub, observability.NewMetricsForTesting(), discardLogger())

	_, err := s.SubmitContact(context.Background(), domain.ContactInput{Name: "Ada", Email: "not-an-email", Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.contacts)
	assert.Empty(t, pub.events)
}

func TestSubmissions_PublishFailureDoesNotFailRequest(t *testing.T) {
	store := &memStore{}
	pub := &mockPublisher{err: errors.New("broker down")}
	m := observability.NewMetricsForTesting()
	s := service.NewSubmissions(store, pub, m, discardLogger())

	_, err := s.SubmitFeedback(context.Background(), domain.FeedbackInput{Category: "general", Feedback: "great"})
	require.NoError(t, err)
	assert.Len(t, store.feedback, 1)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PublishErrors), 0)
}

func TestSubmissions_StoreFailure(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	pub := &mockPublisher{}
	s := service.NewSubmissions(store, pub, observability.NewMetricsForTesting(), discardLogger())

	_, err := s.SubmitFeedback(context.Background(), domain.FeedbackInput{Category: "general", Feedback: "great"})
	assert.ErrorContains(t, err, "disk full")
	assert.Empty(t, pub.events, "nothing is published when storage fails")
}

func TestSubmissions_NilPublisher(t *testing.T) {
	s := service.NewSubmissions(&memStore{}, nil, observability.NewMetricsForTesting(), discardLogger())

	_, err := s.SubmitContact(context.Background(), domain.ContactInput{Name: "Ada", Email: "ada@example.org", Message: "hi"})
	assert.NoError(t, err)
}

func TestSubmissions_UpdateContactStatus(t *testing.T) {
	clk := freezeClock(t)
	store := &memStore{}
	pub := &mockPublisher{}
	s := service.NewSubmissions(store, pub, observability.NewMetricsForTesting(), discardLogger())
	ctx := context.Background()

	c, err := s.SubmitContact(ctx, domain.ContactInput{Name: "Ada", Email: "ada@example.org", Message: "hi"})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	updated, err := s.UpdateContactStatus(ctx, c.ID, "resolved")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, updated.Status)

	require.Len(t, pub.events, 2)
	assert.Equal(t, domain.KindContactStatus, pub.events[1].Kind)
	assert.Equal(t, clk.Now().UTC(), pub.events[1].SubmittedAt)

	_, err = s.UpdateContactStatus(ctx, c.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.UpdateContactStatus(ctx, "missing", "closed")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmissions_Stats(t *testing.T) {
	store := &memStore{}
	s := service.NewSubmissions(store, nil, observability.NewMetricsForTesting(), discardLogger())
	ctx := context.Background()
	rating := 5

	_, err := s.SubmitContact(ctx, domain.ContactInput{Name: "Ada", Email: "ada@example.org", Message: "hi", Priority: "urgent"})
	require.NoError(t, err)
	_, err = s.SubmitFeedback(ctx, domain.FeedbackInput{Category: "data", Feedback: "accurate", Rating: &rating, Anonymous: true})
	require.NoError(t, err)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Contacts.Total)
	assert.Equal(t, 1, stats.Contacts.Priorities["urgent"])
	assert.Equal(t, 1, stats.Feedback.Ratings[5])
	assert.Equal(t, 1, stats.Feedback.Anonymous)
}

func TestSubmissions_CheckReadiness(t *testing.T) {
	store := &memStore{}
	s := service.NewSubmissions(store, nil, observability.NewMetricsForTesting(), discardLogger())
	assert.NoError(t, s.CheckReadiness(context.Background()))

	store.pingErr = errors.New("read-only filesystem")
	assert.ErrorContains(t, s.CheckReadiness(context.Background()), "read-only")
}

package service

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	"github.com/couchcryptid/heat-risk-service/internal/observability"
)

// Publisher announces stored submissions to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event domain.SubmissionEvent) error
}

// Pinger reports whether a dependency is usable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Submissions validates, stores, and announces contact and feedback forms.
type Submissions struct {
	store     domain.SubmissionStore
	publisher Publisher
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewSubmissions creates a Submissions service. publisher may be nil.
func NewSubmissions(store domain.SubmissionStore, publisher Publisher, metrics *observability.Metrics, logger *slog.Logger) *Submissions {
	return &Submissions{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// SubmitContact validates and stores a contact request.
func (s *Submissions) SubmitContact(ctx context.Context, in domain.ContactInput) (domain.Contact, error) {
	c, err := domain.NewContact(in)
	if err != nil {
		return domain.Contact{}, err
	}
	if err := s.store.AddContact(ctx, c); err != nil {
		return domain.Contact{}, err
	}

	s.metrics.Submissions.WithLabelValues(string(domain.KindContact)).Inc()
	s.logger.Info("contact submitted", "id", c.ID, "type", c.Type, "priority", c.Priority)
	s.publish(ctx, domain.SubmissionEvent{ID: c.ID, Kind: domain.KindContact, SubmittedAt: c.Timestamp, Payload: c})
	return c, nil
}

// SubmitFeedback validates and stores a feedback entry.
func (s *Submissions) SubmitFeedback(ctx context.Context, in domain.FeedbackInput) (domain.Feedback, error) {
	f, err := domain.NewFeedback(in)
	if err != nil {
		return domain.Feedback{}, err
	}
	if err := s.store.AddFeedback(ctx, f); err != nil {
		return domain.Feedback{}, err
	}

	s.metrics.Submissions.WithLabelValues(string(domain.KindFeedback)).Inc()
	s.logger.Info("feedback submitted", "id", f.ID, "category", f.Category, "anonymous", f.Anonymous)
	s.publish(ctx, domain.SubmissionEvent{ID: f.ID, Kind: domain.KindFeedback, SubmittedAt: f.Timestamp, Payload: f})
	return f, nil
}

// UpdateContactStatus moves a contact request to a new status.
func (s *Submissions) UpdateContactStatus(ctx context.Context, id, status string) (domain.Contact, error) {
	st, err := domain.ParseContactStatus(status)
	if err != nil {
		return domain.Contact{}, err
	}
	c, err := s.store.UpdateContactStatus(ctx, id, st)
	if err != nil {
		return domain.Contact{}, err
	}

	s.metrics.Submissions.WithLabelValues(string(domain.KindContactStatus)).Inc()
	s.logger.Info("contact status updated", "id", c.ID, "status", c.Status)
	at := c.Timestamp
	if c.UpdatedAt != nil {
		at = *c.UpdatedAt
	}
	s.publish(ctx, domain.SubmissionEvent{ID: c.ID, Kind: domain.KindContactStatus, SubmittedAt: at, Payload: c})
	return c, nil
}

// Contacts lists stored contact requests, most recent first.
func (s *Submissions) Contacts(ctx context.Context) ([]domain.Contact, error) {
	return s.store.ListContacts(ctx)
}

// Feedback lists stored feedback, most recent first.
func (s *Submissions) Feedback(ctx context.Context) ([]domain.Feedback, error) {
	return s.store.ListFeedback(ctx)
}

// Stats tallies every stored submission.
func (s *Submissions) Stats(ctx context.Context) (domain.SubmissionStats, error) {
	contacts, err := s.store.ListContacts(ctx)
	if err != nil {
		return domain.SubmissionStats{}, err
	}
	feedback, err := s.store.ListFeedback(ctx)
	if err != nil {
		return domain.SubmissionStats{}, err
	}
	return domain.ComputeStats(contacts, feedback), nil
}

// CheckReadiness returns nil once the store is usable.
func (s *Submissions) CheckReadiness(ctx context.Context) error {
	if p, ok := s.store.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// publish sends an event when a publisher is configured. Failures are logged
// and counted; the submission is already stored.
func (s *Submissions) publish(ctx context.Context, event domain.SubmissionEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.PublishErrors.Inc()
		s.logger.Warn("submission event publish failed", "id", event.ID, "kind", event.Kind, "error", err)
	}
}

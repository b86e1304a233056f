package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher produces submission events to a Kafka topic.
// It implements service.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// Submissions are published one at a time on the request path, so the writer
// flushes each message instead of waiting for a batch to fill.
const (
	publishBatchSize    = 1
	publishBatchTimeout = 10 * time.Millisecond
)

// NewPublisher creates a Kafka producer for the submissions topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		BatchSize:              publishBatchSize,
		BatchTimeout:           publishBatchTimeout,
		WriteTimeout:           5 * time.Second,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish writes a single event keyed by submission ID so that updates to the
// same contact land on the same partition.
func (p *Publisher) Publish(ctx context.Context, event domain.SubmissionEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Kind, err)
	}
	p.logger.Debug("submission event published", "id", event.ID, "kind", event.Kind)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a SubmissionEvent into a Kafka message.
func serializeToMessage(event domain.SubmissionEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize submission event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "kind", Value: []byte(event.Kind)},
			{Key: "submitted_at", Value: []byte(event.SubmittedAt.Format(time.RFC3339))},
		},
	}, nil
}

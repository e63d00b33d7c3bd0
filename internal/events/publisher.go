package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Event types emitted by the domain services.
const (
	EventUserRegistered  = "user.registered"
	EventTrainerPromoted = "trainer.promoted"
	EventTrainerDemoted  = "trainer.demoted"
	EventExerciseCreated = "exercise.created"
	EventExerciseDeleted = "exercise.deleted"
	EventProgramCreated  = "program.created"
	EventProgramDeleted  = "program.deleted"
)

// Topic carries every domain event; consumers filter on Event.Type.
const Topic = "fitness.events"

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// NewEvent builds an event with a fresh id and timestamp.
func NewEvent(eventType string, payload map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// EventPublisher publishes domain events. Publishing is best-effort from
// the caller's point of view: services log failures but never fail the
// request over them.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// kafkaEventPublisher publishes events to Kafka through watermill.
type kafkaEventPublisher struct {
	publisher message.Publisher
}

// NewKafkaEventPublisher connects a watermill Kafka publisher.
func NewKafkaEventPublisher(brokers []string, logger *slog.Logger) (EventPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return &kafkaEventPublisher{publisher: publisher}, nil
}

func (p *kafkaEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("type", event.Type)

	if err := p.publisher.Publish(Topic, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}
	return nil
}

func (p *kafkaEventPublisher) Close() error {
	return p.publisher.Close()
}

// MockEventPublisher records events in memory and logs them. Used in tests
// and as the fallback when no broker is configured.
type MockEventPublisher struct {
	logger *slog.Logger

	mu     sync.Mutex
	events []Event
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (p *MockEventPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()

	p.logger.Info("domain event", "type", event.Type, "event_id", event.ID)
	return nil
}

func (p *MockEventPublisher) Close() error {
	return nil
}

// Events returns a copy of everything published so far.
func (p *MockEventPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}

package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/domain/events"
	"github.com/amirasaad/exchange/pkg/eventbus"
	"github.com/segmentio/kafka-go"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// messageWriter is the part of *kafka.Writer the bus uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventBus publishes every event to a single topic as a JSON envelope
// keyed by event type. Handlers registered on the bus are still invoked
// in-process after a successful write.
type KafkaEventBus struct {
	writer   messageWriter
	topic    string
	logger   *slog.Logger
	mu       sync.RWMutex
	handlers map[events.EventType][]eventbus.HandlerFunc
}

// NewWithKafka creates a Kafka-backed event bus from cfg.
func NewWithKafka(cfg *config.Kafka, logger *slog.Logger) (*KafkaEventBus, error) {
	brokers := parseBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka event bus: brokers are required")
	}
	topic := strings.TrimSpace(cfg.Topic)
	if topic == "" {
		return nil, fmt.Errorf("kafka event bus: topic is required")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
	}
	bus := newKafkaEventBus(writer, topic, logger)
	bus.logger.Info("Kafka event bus initialized", "brokers", brokers, "topic", topic)
	return bus, nil
}

func newKafkaEventBus(writer messageWriter, topic string, logger *slog.Logger) *KafkaEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaEventBus{
		writer:   writer,
		topic:    topic,
		logger:   logger.With("bus", "kafka"),
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
	}
}

// Register registers an in-process handler for a specific event type.
func (b *KafkaEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit publishes event to Kafka, then dispatches it to local handlers.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: marshal %s: %w", event.Type(), err)
	}
	value, err := json.Marshal(envelope{Type: event.Type(), Payload: payload})
	if err != nil {
		return fmt.Errorf("kafka event bus: marshal envelope: %w", err)
	}

	if err := b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Type()),
		Value: value,
	}); err != nil {
		b.logger.Error("failed to publish event", "type", event.Type(), "topic", b.topic, "error", err)
		return fmt.Errorf("kafka event bus: write %s: %w", event.Type(), err)
	}
	b.logger.Debug("event published", "type", event.Type(), "topic", b.topic)

	b.mu.RLock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[events.EventType(event.Type())]...)
	b.mu.RUnlock()
	dispatch(ctx, b.logger, handlers, event)
	return nil
}

// Close flushes and closes the underlying writer.
func (b *KafkaEventBus) Close() error {
	return b.writer.Close()
}

// DecodeEnvelope turns a message value written by Emit back into a typed event.
func DecodeEnvelope(value []byte) (events.Event, error) {
	var env envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	factory, ok := events.EventTypes[events.EventType(env.Type)]
	if !ok {
		return nil, fmt.Errorf("decode envelope: unknown event type %q", env.Type)
	}
	event := factory()
	if err := json.Unmarshal(env.Payload, event); err != nil {
		return nil, fmt.Errorf("decode envelope %s: %w", env.Type, err)
	}
	return event, nil
}

func parseBrokers(brokers []string) []string {
	var out []string
	for _, b := range brokers {
		for _, part := range strings.Split(b, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)

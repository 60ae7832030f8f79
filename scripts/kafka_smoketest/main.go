// Command kafka_smoketest publishes a ConversionRecorded event through the
// Kafka event bus and reads it back from the topic to verify a local cluster.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	infra_eventbus "github.com/amirasaad/exchange/infra/eventbus"
	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// RunSmokeTest emits one event and consumes the topic until it shows up.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	brokers := strings.TrimSpace(os.Getenv("BROKERS"))
	if brokers == "" {
		brokers = "localhost:9093,localhost:9092"
	}
	topic := strings.TrimSpace(os.Getenv("TOPIC"))
	if topic == "" {
		topic = "exchange.events.smoketest"
	}
	groupID := strings.TrimSpace(os.Getenv("GROUP_ID"))
	if groupID == "" {
		groupID = "exchange-smoketest"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bus, err := infra_eventbus.NewWithKafka(&config.Kafka{
		Brokers: strings.Split(brokers, ","),
		Topic:   topic,
	}, logger)
	if err != nil {
		return err
	}
	defer func() { _ = bus.Close() }()

	sent := events.ConversionRecorded{
		ID:                  uuid.New(),
		Username:            "smoketest",
		OriginCurrency:      "EUR",
		DestinationCurrency: "USD",
		OriginAmount:        1,
		DestinationAmount:   1.1,
		Rate:                1.1,
		ConversionTime:      time.Now().UTC(),
		Timestamp:           time.Now().UTC(),
	}
	if err := bus.Emit(ctx, sent); err != nil {
		logger.Error("emit failed", "error", err)
		return err
	}
	logger.Info("produced", "topic", topic, "id", sent.ID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     strings.Split(brokers, ","),
		GroupID:     groupID,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     500 * time.Millisecond,
	})
	defer func() { _ = r.Close() }()

	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			logger.Error("fetch failed", "topic", topic, "error", err)
			return err
		}
		_ = r.CommitMessages(ctx, msg)

		event, err := infra_eventbus.DecodeEnvelope(msg.Value)
		if err != nil {
			logger.Warn("skipping message", "offset", msg.Offset, "error", err)
			continue
		}
		got, ok := event.(*events.ConversionRecorded)
		if !ok || got.ID != sent.ID {
			continue
		}
		logger.Info("consumed", "topic", topic, "id", got.ID, "type", event.Type())
		break
	}

	logger.Info("kafka smoke test passed")
	return nil
}

// main runs the smoke test and exits non-zero on failure.
func main() {
	if err := RunSmokeTest(); err != nil {
		os.Exit(1)
	}
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/storm-cone-engine/internal/config"
	"github.com/couchcryptid/storm-cone-engine/internal/engine"
)

// Writer publishes run reports to a Kafka topic. It implements
// engine.Reporter; downstream mailers and visualizers consume the topic.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured report topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaReportTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes and writes one run report.
func (w *Writer) Publish(ctx context.Context, report engine.Report) error {
	msg, err := serializeReport(report)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeReport marshals a report into a Kafka message keyed by the run's
// as-of time, with the outcome in a header so consumers can route without
// deserializing.
func serializeReport(report engine.Report) (kafkago.Message, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(report.AsOf.Format(time.RFC3339)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "outcome", Value: []byte(report.Outcome)},
			{Key: "generated_at", Value: []byte(report.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}

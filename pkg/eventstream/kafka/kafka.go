// Package kafka publishes node events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	segmentio "github.com/segmentio/kafka-go"

	"github.com/fractalhq/fractal/pkg/eventstream"
)

// DefaultTopic is the topic node events are published to when none is
// configured.
const DefaultTopic = "fractal.node.events"

// Config holds Kafka publisher settings.
type Config struct {
	// Brokers is the bootstrap broker list.
	Brokers []string

	// Topic defaults to DefaultTopic.
	Topic string
}

// Publisher writes node events to Kafka. Messages are keyed by node id so a
// node's events land on one partition in order.
type Publisher struct {
	writer *segmentio.Writer
}

// NewPublisher creates a Kafka-backed eventstream publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}

	return &Publisher{
		writer: &segmentio.Writer{
			Addr:     segmentio.TCP(cfg.Brokers...),
			Topic:    cfg.Topic,
			Balancer: &segmentio.Hash{},
		},
	}, nil
}

var _ eventstream.Publisher = (*Publisher)(nil)

// PublishNodeEvent writes one event to the topic.
func (p *Publisher) PublishNodeEvent(ctx context.Context, event *eventstream.NodeEventEnvelope) error {
	if event == nil {
		return eventstream.ErrNilEvent
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling node event: %w", err)
	}

	return p.writer.WriteMessages(ctx, segmentio.Message{
		Key:   []byte(event.Event.NodeID.String()),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

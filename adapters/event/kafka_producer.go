package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sachin22-web/sachin-portfolio/internal/config"
)

const (
	TopicContentEvents = "content.events"
)

// ContentEvent is emitted whenever an admin mutates a content section,
// so downstream consumers can refresh derived state.
type ContentEvent struct {
	SectionKey string    `json:"section_key"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, ev ContentEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal content event: %w", err)
	}
	return c.ContentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.SectionKey),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
}

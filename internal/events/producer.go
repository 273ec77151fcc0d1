package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

const (
	TopicProducts = "product_events"
	TopicUsers    = "user_events"
)

// Producer publishes domain events. Mutations treat publishing as best-effort:
// a failed publish is logged by the caller, never surfaced to the client.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(address string) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(address),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w}
}

func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write failed: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

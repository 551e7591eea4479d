package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/segmentio/kafka-go"
)

const (
	TopicCartUpdated  = "cart.updated"
	TopicOrderCreated = "order.created"
)

// Publisher pushes shop events to Kafka so other services (kitchen display,
// notifications) can react to cart and order changes. A nil Publisher is
// valid and drops every event, which keeps the API usable without a broker.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher builds a Publisher from a comma-separated broker list.
// An empty list disables publishing.
func NewPublisher(brokers string) *Publisher {
	if brokers == "" {
		log.Println("KAFKA_BROKERS not set, event publishing disabled")
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(brokers, ",")...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish sends one JSON-encoded event keyed by entity id.
func (p *Publisher) Publish(ctx context.Context, topic, key string, event interface{}) error {
	if p == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

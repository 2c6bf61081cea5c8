package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/wisepayru/banking/internal/event"
)

// KafkaSink forwards events to a Kafka topic, keyed by the event identifier
// so updates for the same operation land on the same partition.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(broker, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (s *KafkaSink) Receive(ctx context.Context, evt event.Event) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", evt.Kind(), err)
	}
	msg := kafka.Message{
		Key:   []byte(evt.ID()),
		Value: b,
		Headers: []kafka.Header{
			{Key: "category", Value: []byte(evt.Kind())},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", evt.Kind(), err)
	}
	return nil
}

// Close shuts down the Kafka writer to free resources.
func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

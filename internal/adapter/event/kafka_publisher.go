package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/buildmate/quote-service/internal/core/domain"
)

// KafkaPublisher writes quote-created events to a Kafka topic, keyed
// by quote id.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.CRC32Balancer{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) PublishQuoteCreated(ctx context.Context, result domain.QuoteResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode quote event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(result.ID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write quote event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

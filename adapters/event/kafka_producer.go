package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/portify/portify-api/internal/config"
)

const TopicPortfolioEvents = "portfolio.events"

const EventPortfolioUpdated = "portfolio.updated"

// PortfolioEventPayload is emitted after every successful owner mutation.
// The worker uses it to re-warm the portfolio cache.
type PortfolioEventPayload struct {
	EventType  string    `json:"event_type"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Section    string    `json:"section"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	PortfolioEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	portfolioWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{PortfolioEventsWriter: portfolioWriter}, nil
}

// PublishPortfolioUpdated writes one portfolio.updated event. The worker's
// cache rewarm is idempotent, so delivery order does not matter.
func (c *KafkaProducerClient) PublishPortfolioUpdated(ctx context.Context, ownerID uuid.UUID, sectionKind string) error {
	payload := PortfolioEventPayload{
		EventType:  EventPortfolioUpdated,
		OwnerID:    ownerID,
		Section:    sectionKind,
		OccurredAt: time.Now().UTC(),
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal portfolio event: %w", err)
	}

	return c.PortfolioEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ownerID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.PortfolioEventsWriter != nil {
		c.PortfolioEventsWriter.Close()
	}
}

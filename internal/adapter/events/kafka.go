package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes order events keyed by order id, so events of one
// order stay in one partition.
type KafkaPublisher struct {
	writer messageWriter
	logger *zap.Logger
	now    func() time.Time
}

func NewKafkaPublisher(cfg *config.Kafka, log *zap.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer, logger: log, now: time.Now}, nil
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, newOrderEvent(TypeOrderPlaced, order, p.now()))
}

func (p *KafkaPublisher) PublishOrderCanceled(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, newOrderEvent(TypeOrderCanceled, order, p.now()))
}

func (p *KafkaPublisher) publish(ctx context.Context, event OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:     []byte(event.OrderID),
		Value:   data,
		Time:    event.OccurredAt,
		Headers: []kafka.Header{{Key: "type", Value: []byte(event.Type)}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s: %w", event.Type, err)
	}
	p.logger.Debug("Order event published", zap.String("type", event.Type), zap.String("order", event.OrderID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ port.OrderEventPublisher = (*KafkaPublisher)(nil)

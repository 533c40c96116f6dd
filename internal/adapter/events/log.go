package events

import (
	"context"
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

// LogPublisher writes order events to the log. Used when no broker is configured.
type LogPublisher struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: log, now: time.Now}
}

func (p *LogPublisher) PublishOrderPlaced(_ context.Context, order *domain.Order) error {
	p.log(newOrderEvent(TypeOrderPlaced, order, p.now()))
	return nil
}

func (p *LogPublisher) PublishOrderCanceled(_ context.Context, order *domain.Order) error {
	p.log(newOrderEvent(TypeOrderCanceled, order, p.now()))
	return nil
}

func (p *LogPublisher) log(e OrderEvent) {
	p.logger.Info("Order event",
		zap.String("type", e.Type),
		zap.String("order", e.OrderID),
		zap.String("client", e.ClientID),
		zap.String("total", e.Total),
		zap.Int("items", len(e.Items)))
}

func (p *LogPublisher) Close() error {
	return nil
}

var _ port.OrderEventPublisher = (*LogPublisher)(nil)

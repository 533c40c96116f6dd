// Package events announces committed order changes to other systems.
package events

import (
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
)

const (
	TypeOrderPlaced   = "order.placed"
	TypeOrderCanceled = "order.canceled"
)

type OrderEvent struct {
	Type       string      `json:"type"`
	OrderID    string      `json:"orderId"`
	ClientID   string      `json:"clientId"`
	Total      string      `json:"total"`
	Items      []EventItem `json:"items"`
	OccurredAt time.Time   `json:"occurredAt"`
}

type EventItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

func newOrderEvent(eventType string, order *domain.Order, at time.Time) OrderEvent {
	items := make([]EventItem, 0, len(order.Lines))
	for _, l := range order.Lines {
		items = append(items, EventItem{
			ProductID: l.ProductID.String(),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			Subtotal:  l.Subtotal.String(),
		})
	}
	return OrderEvent{
		Type:       eventType,
		OrderID:    order.ID.String(),
		ClientID:   order.ClientID.String(),
		Total:      order.Total.String(),
		Items:      items,
		OccurredAt: at.UTC(),
	}
}

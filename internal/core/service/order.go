package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/MikeRez0/orderdesk/internal/core/service"

type OrderService struct {
	repo    port.OrderRepository
	events  port.OrderEventPublisher
	metrics port.OrderMetrics
	logger  *zap.Logger
	tracer  trace.Tracer
}

func NewOrderService(repo port.OrderRepository, events port.OrderEventPublisher,
	metrics port.OrderMetrics, logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		repo:    repo,
		events:  events,
		metrics: metrics,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// PlaceOrder checks and decrements stock for every item, prices the lines and
// stores the order with its lines, all in one transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder", trace.WithAttributes(
		attribute.String("order.client_id", req.ClientID.String()),
		attribute.Int("order.items", len(req.Items)),
	))
	defer span.End()

	if err := req.Validate(); err != nil {
		s.reject(span, "validation", err)
		return nil, err
	}

	var placed *domain.Order
	err := s.repo.WithinTx(ctx, func(ctx context.Context, uow port.UnitOfWork) error {
		if _, err := uow.GetClient(ctx, req.ClientID); err != nil {
			return err
		}

		order := domain.NewOrder(req.ClientID)
		for _, item := range req.Items {
			product, err := uow.GetProduct(ctx, item.ProductID)
			if err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return &domain.InsufficientStockError{
					Description: product.Description,
					Available:   product.Stock,
					Requested:   item.Quantity,
				}
			}

			// saved right away so a repeated product in this request sees the new stock
			product.Stock -= item.Quantity
			product, err = uow.SaveProduct(ctx, product)
			if err != nil {
				return err
			}

			line, err := domain.NewOrderLine(product, item.Quantity)
			if err != nil {
				return err
			}
			if err := order.AddLine(line); err != nil {
				return err
			}
		}

		header, err := uow.CreateOrderHeader(ctx, order)
		if err != nil {
			return err
		}
		order.AssignID(header.ID)

		if err := uow.CreateLines(ctx, order.Lines); err != nil {
			return err
		}

		placed, err = uow.GetOrderWithLines(ctx, header.ID)
		return err
	})
	if err != nil {
		s.reject(span, rejectReason(err), err)
		if isFatal(err) {
			s.logger.Error("Place order", zap.Error(err))
		}
		return nil, err
	}

	span.SetAttributes(
		attribute.String("order.id", placed.ID.String()),
		attribute.String("order.total", placed.Total.String()),
	)
	s.metrics.OrderPlaced(placed.Total, len(placed.Lines))
	s.logger.Debug("Order placed",
		zap.String("order", placed.ID.String()),
		zap.String("client", placed.ClientID.String()),
		zap.Stringer("total", placed.Total))

	if err := s.events.PublishOrderPlaced(ctx, placed); err != nil {
		s.logger.Warn("Publish order placed", zap.String("order", placed.ID.String()), zap.Error(err))
	}

	return placed, nil
}

// CancelOrder returns every line's quantity to stock and deletes the order.
// Lines whose product no longer exists are skipped.
func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.CancelOrder", trace.WithAttributes(
		attribute.String("order.id", id.String()),
	))
	defer span.End()

	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		s.fail(span, err)
		return err
	}

	err = s.repo.WithinTx(ctx, func(ctx context.Context, uow port.UnitOfWork) error {
		for _, line := range order.Lines {
			product, err := uow.GetProduct(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, domain.ErrDataNotFound) {
					s.logger.Debug("Skip stock restore for deleted product",
						zap.String("order", order.ID.String()),
						zap.String("product", line.ProductID.String()))
					continue
				}
				return err
			}

			product.Stock += line.Quantity
			if _, err := uow.SaveProduct(ctx, product); err != nil {
				return err
			}
		}

		return uow.DeleteOrder(ctx, order)
	})
	if err != nil {
		s.fail(span, err)
		if isFatal(err) {
			s.logger.Error("Cancel order", zap.String("order", id.String()), zap.Error(err))
		}
		return err
	}

	s.metrics.OrderCanceled()
	s.logger.Debug("Order canceled", zap.String("order", id.String()))

	if err := s.events.PublishOrderCanceled(ctx, order); err != nil {
		s.logger.Warn("Publish order canceled", zap.String("order", id.String()), zap.Error(err))
	}

	return nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		if isFatal(err) {
			s.logger.Error("Get order", zap.Error(err))
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, page domain.Page) (*domain.PageResult[*domain.Order], error) {
	list, total, err := s.repo.ListOrders(ctx, page)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return domain.NewPageResult(list, total, page), nil
}

func (s *OrderService) reject(span trace.Span, reason string, err error) {
	s.metrics.OrderRejected(reason)
	s.fail(span, err)
}

func (s *OrderService) fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrDataNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return "concurrent_update"
	default:
		return "fatal"
	}
}

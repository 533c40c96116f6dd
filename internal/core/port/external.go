package port

import (
	"context"
	"io"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/govalues/decimal"
)

//go:generate mockgen -source=external.go -destination=mock/external.go -package=mock

// CnpjClient queries the public company registry.
type CnpjClient interface {
	Lookup(ctx context.Context, cnpj string) (*domain.CompanyInfo, error)
}

// ImageStorage keeps product image files.
type ImageStorage interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	Remove(ctx context.Context, filename string) error
}

// OrderEventPublisher announces committed order changes.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error
	PublishOrderCanceled(ctx context.Context, order *domain.Order) error
}

// OrderMetrics records order workflow outcomes.
type OrderMetrics interface {
	OrderPlaced(total decimal.Decimal, lines int)
	OrderRejected(reason string)
	OrderCanceled()
}

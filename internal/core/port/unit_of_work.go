package port

import (
	"context"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/google/uuid"
)

// TxFn runs inside one storage transaction. Returning an error rolls it back.
type TxFn func(ctx context.Context, uow UnitOfWork) error

//go:generate mockgen -destination=mock/unit_of_work.go -package=mock github.com/MikeRez0/orderdesk/internal/core/port UnitOfWork
type Transactor interface {
	// WithinTx runs fn in a serializable transaction and commits when fn returns nil.
	WithinTx(ctx context.Context, fn TxFn) error
}

// UnitOfWork is the transaction-bound view of storage handed to a TxFn.
type UnitOfWork interface {
	OrderStore
	Inventory
}

// Inventory reads and writes product stock. Reads lock the row until the
// transaction ends.
type Inventory interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

// OrderStore persists the order aggregate.
type OrderStore interface {
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	CreateOrderHeader(ctx context.Context, order *domain.Order) (*domain.Order, error)
	CreateLines(ctx context.Context, lines []*domain.OrderLine) error
	GetOrderWithLines(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// DeleteOrder removes the header; lines go with it.
	DeleteOrder(ctx context.Context, order *domain.Order) error
}

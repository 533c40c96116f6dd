package memory

import (
	"context"
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/google/uuid"
)

type unitOfWork struct {
	t   *tables
	now func() time.Time
}

var _ port.UnitOfWork = (*unitOfWork)(nil)

func (u *unitOfWork) GetClient(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	c, ok := u.t.clients[id]
	if !ok {
		return nil, domain.NewNotFoundError("client", id)
	}
	return &c, nil
}

func (u *unitOfWork) GetProduct(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	p, ok := u.t.products[id]
	if !ok {
		return nil, domain.NewNotFoundError("product", id)
	}
	return &p, nil
}

func (u *unitOfWork) SaveProduct(_ context.Context, product *domain.Product) (*domain.Product, error) {
	current, ok := u.t.products[product.ID]
	if !ok {
		return nil, domain.NewNotFoundError("product", product.ID)
	}
	saved := *product
	saved.Images = nil
	saved.CreatedAt = current.CreatedAt
	saved.UpdatedAt = u.now()
	u.t.products[product.ID] = saved

	product.CreatedAt = saved.CreatedAt
	product.UpdatedAt = saved.UpdatedAt
	return product, nil
}

func (u *unitOfWork) CreateOrderHeader(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if _, ok := u.t.clients[order.ClientID]; !ok {
		return nil, domain.ErrReferencedData
	}
	header := domain.Order{
		ID:        uuid.New(),
		ClientID:  order.ClientID,
		Total:     order.Total,
		CreatedAt: u.now(),
	}
	header.UpdatedAt = header.CreatedAt
	u.t.orders[header.ID] = header
	return &header, nil
}

func (u *unitOfWork) CreateLines(_ context.Context, lines []*domain.OrderLine) error {
	for _, l := range lines {
		if _, ok := u.t.orders[l.OrderID]; !ok {
			return domain.ErrReferencedData
		}
		if _, ok := u.t.products[l.ProductID]; !ok {
			return domain.ErrReferencedData
		}
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		stored := *l
		stored.Product = nil
		u.t.lines[l.ID] = stored
		u.t.lineOrder[l.OrderID] = append(u.t.lineOrder[l.OrderID], l.ID)
	}
	return nil
}

func (u *unitOfWork) GetOrderWithLines(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	return u.t.order(id)
}

func (u *unitOfWork) DeleteOrder(_ context.Context, order *domain.Order) error {
	if _, ok := u.t.orders[order.ID]; !ok {
		return domain.NewNotFoundError("order", order.ID)
	}
	for _, lineID := range u.t.lineOrder[order.ID] {
		delete(u.t.lines, lineID)
	}
	delete(u.t.lineOrder, order.ID)
	delete(u.t.orders, order.ID)
	return nil
}

func (s *Store) ReadOrder(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	var order *domain.Order
	err := s.read(func(t *tables) error {
		var err error
		order, err = t.order(id)
		return err
	})
	return order, err
}

func (s *Store) ListOrders(_ context.Context, p domain.Page) ([]*domain.Order, int, error) {
	var (
		list  []*domain.Order
		total int
	)
	err := s.read(func(t *tables) error {
		all := make([]*domain.Order, 0, len(t.orders))
		for id := range t.orders {
			o, err := t.order(id)
			if err != nil {
				return err
			}
			all = append(all, o)
		}
		total = len(all)
		list = page(all, func(o *domain.Order) (time.Time, uuid.UUID) { return o.CreatedAt, o.ID }, p)
		return nil
	})
	return list, total, err
}

// order assembles the aggregate with its client, lines and line products.
// A line whose product was deleted keeps a nil Product.
func (t *tables) order(id uuid.UUID) (*domain.Order, error) {
	header, ok := t.orders[id]
	if !ok {
		return nil, domain.NewNotFoundError("order", id)
	}
	order := header
	if c, ok := t.clients[order.ClientID]; ok {
		order.Client = &c
	}
	order.Lines = make([]*domain.OrderLine, 0, len(t.lineOrder[id]))
	for _, lineID := range t.lineOrder[id] {
		l, ok := t.lines[lineID]
		if !ok {
			continue
		}
		if p, ok := t.products[l.ProductID]; ok {
			p.Images = nil
			l.Product = &p
		}
		order.Lines = append(order.Lines, &l)
	}
	return &order, nil
}

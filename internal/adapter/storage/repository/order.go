package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"o.id", "o.client_id", "o.total", "o.created_at", "o.updated_at",
	"c.id", "c.company_name", "c.cnpj", "c.email", "c.created_at", "c.updated_at",
}

var lineColumns = []string{
	"l.id", "l.order_id", "l.product_id", "l.quantity", "l.unit_price", "l.subtotal",
	"p.id", "p.description", "p.sale_price", "p.stock", "p.created_at", "p.updated_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := domain.Order{Client: &domain.Client{}}
	c := o.Client
	err := row.Scan(
		&o.ID, &o.ClientID, &o.Total, &o.CreatedAt, &o.UpdatedAt,
		&c.ID, &c.CompanyName, &c.CNPJ, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func selectOrders(qb *sq.StatementBuilderType) sq.SelectBuilder {
	return qb.Select(orderColumns...).
		From("orders o").
		Join("clients c ON c.id = o.client_id")
}

func readOrder(ctx context.Context, q querier, qb *sq.StatementBuilderType, id uuid.UUID) (*domain.Order, error) {
	sql, args, err := selectOrders(qb).Where(sq.Eq{"o.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("order", id)
		}
		return nil, mapError(err)
	}

	if err := attachLines(ctx, q, qb, []*domain.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

// attachLines loads the lines of all orders with one query, keeping insertion order.
func attachLines(ctx context.Context, q querier, qb *sq.StatementBuilderType, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Order, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		o.Lines = make([]*domain.OrderLine, 0)
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	sql, args, err := qb.Select(lineColumns...).
		From("order_lines l").
		Join("products p ON p.id = l.product_id").
		Where(sq.Eq{"l.order_id": ids}).
		OrderBy("l.order_id", "l.position").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		l := domain.OrderLine{Product: &domain.Product{}}
		p := l.Product
		err := rows.Scan(
			&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal,
			&p.ID, &p.Description, &p.SalePrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return err
		}
		o := byID[l.OrderID]
		o.Lines = append(o.Lines, &l)
	}
	return mapError(rows.Err())
}

func (r *Repository) ReadOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return readOrder(ctx, r.db, r.db.QueryBuilder, id)
}

func (r *Repository) ListOrders(ctx context.Context, page domain.Page) ([]*domain.Order, int, error) {
	total, err := count(ctx, r.db, r.db.QueryBuilder, "orders")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := selectOrders(r.db.QueryBuilder).
		OrderBy("o.created_at DESC", "o.id").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	if err := attachLines(ctx, r.db, r.db.QueryBuilder, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// unitOfWork runs every statement on the transaction it was created with.
type unitOfWork struct {
	q  querier
	qb *sq.StatementBuilderType
}

var _ port.UnitOfWork = (*unitOfWork)(nil)

// GetClient takes a share lock so the client cannot be deleted before commit.
func (u *unitOfWork) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return readClient(ctx, u.q, u.qb, id, "FOR SHARE")
}

func (u *unitOfWork) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return readProduct(ctx, u.q, u.qb, id, "FOR UPDATE")
}

func (u *unitOfWork) SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := u.qb.
		Update("products").
		Set("description", product.Description).
		Set("sale_price", product.SalePrice).
		Set("stock", product.Stock).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": product.ID}).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = u.q.QueryRow(ctx, sql, args...).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("product", product.ID)
		}
		return nil, mapError(err)
	}
	return product, nil
}

func (u *unitOfWork) CreateOrderHeader(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := u.qb.
		Insert("orders").
		Columns("client_id", "total").
		Values(order.ClientID, order.Total).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	header := domain.Order{ClientID: order.ClientID, Total: order.Total}
	err = u.q.QueryRow(ctx, sql, args...).Scan(&header.ID, &header.CreatedAt, &header.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &header, nil
}

func (u *unitOfWork) CreateLines(ctx context.Context, lines []*domain.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	statement := u.qb.
		Insert("order_lines").
		Columns("id", "order_id", "product_id", "position", "quantity", "unit_price", "subtotal")
	for i, l := range lines {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		statement = statement.Values(l.ID, l.OrderID, l.ProductID, i, l.Quantity, l.UnitPrice, l.Subtotal)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	if _, err := u.q.Exec(ctx, sql, args...); err != nil {
		return mapError(err)
	}
	return nil
}

func (u *unitOfWork) GetOrderWithLines(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return readOrder(ctx, u.q, u.qb, id)
}

func (u *unitOfWork) DeleteOrder(ctx context.Context, order *domain.Order) error {
	sql, args, err := u.qb.Delete("orders").Where(sq.Eq{"id": order.ID}).ToSql()
	if err != nil {
		return err
	}

	tag, err := u.q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("order", order.ID)
	}
	return nil
}

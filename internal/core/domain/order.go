package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// Order is the aggregate root: a header plus the lines it owns.
// Total is fixed when the order is placed and never recomputed.
type Order struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Client    *Client
	Lines     []*OrderLine
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderLine struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Product   *Product
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// PlaceOrderRequest is the input of order placement.
type PlaceOrderRequest struct {
	ClientID uuid.UUID
	Items    []PlaceOrderItem
}

type PlaceOrderItem struct {
	ProductID uuid.UUID
	Quantity  int
}

func (r *PlaceOrderRequest) Validate() error {
	var errs ValidationErrors
	if r.ClientID == uuid.Nil {
		errs.add("clientId", "is required")
	}
	if len(r.Items) == 0 {
		errs.add("items", "must contain at least one item")
	}
	for i, item := range r.Items {
		field := "items[" + strconv.Itoa(i) + "]"
		if item.ProductID == uuid.Nil {
			errs.add(field+".productId", "is required")
		}
		if item.Quantity < 1 {
			errs.add(field+".quantity", "must be at least 1")
		}
	}
	return errs.errOrNil()
}

func NewOrder(clientID uuid.UUID) *Order {
	return &Order{
		ClientID: clientID,
		Total:    decimal.Zero.Pad(MoneyScale),
	}
}

// NewOrderLine captures the current sale price of product as the line's unit price.
func NewOrderLine(product *Product, quantity int) (*OrderLine, error) {
	unitPrice, err := RoundMoney(product.SalePrice)
	if err != nil {
		return nil, err
	}
	subtotal, err := LineSubtotal(unitPrice, quantity)
	if err != nil {
		return nil, err
	}
	return &OrderLine{
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
	}, nil
}

// AddLine appends l and accumulates its subtotal into the order total.
func (o *Order) AddLine(l *OrderLine) error {
	total, err := o.Total.Add(l.Subtotal)
	if err != nil {
		return fmt.Errorf("math error:%w", err)
	}
	o.Total = total
	o.Lines = append(o.Lines, l)
	return nil
}

// AssignID sets the order id on the header and every line.
func (o *Order) AssignID(id uuid.UUID) {
	o.ID = id
	for _, l := range o.Lines {
		l.OrderID = id
	}
}

// LinesTotal sums the line subtotals.
func (o *Order) LinesTotal() (decimal.Decimal, error) {
	sum := decimal.Zero.Pad(MoneyScale)
	for _, l := range o.Lines {
		var err error
		sum, err = sum.Add(l.Subtotal)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
		}
	}
	return sum, nil
}

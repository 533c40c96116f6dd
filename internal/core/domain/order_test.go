package domain_test

import (
	"errors"
	"testing"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderRequest_Validate(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name      string
		req       domain.PlaceOrderRequest
		expFields []string
	}{
		{
			name: "valid",
			req: domain.PlaceOrderRequest{
				ClientID: uuid.New(),
				Items:    []domain.PlaceOrderItem{{ProductID: productID, Quantity: 1}},
			},
		},
		{
			name:      "no client and no items",
			req:       domain.PlaceOrderRequest{},
			expFields: []string{"clientId", "items"},
		},
		{
			name: "zero quantity and missing product",
			req: domain.PlaceOrderRequest{
				ClientID: uuid.New(),
				Items: []domain.PlaceOrderItem{
					{ProductID: productID, Quantity: 2},
					{Quantity: 0},
				},
			},
			expFields: []string{"items[1].productId", "items[1].quantity"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.req.Validate()
			if test.expFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrBadRequest))

			var verr domain.ValidationErrors
			require.True(t, errors.As(err, &verr))
			fields := make([]string, 0, len(verr))
			for _, f := range verr {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, test.expFields, fields)
		})
	}
}

func TestOrder_AddLine(t *testing.T) {
	product := &domain.Product{
		ID:          uuid.New(),
		Description: "Notebook",
		SalePrice:   decimal.MustParse("100"),
		Stock:       10,
	}

	order := domain.NewOrder(uuid.New())

	first, err := domain.NewOrderLine(product, 3)
	require.NoError(t, err)
	require.NoError(t, order.AddLine(first))

	second, err := domain.NewOrderLine(product, 2)
	require.NoError(t, err)
	require.NoError(t, order.AddLine(second))

	assert.Equal(t, "100.00", first.UnitPrice.String())
	assert.Equal(t, "300.00", first.Subtotal.String())
	assert.Equal(t, "200.00", second.Subtotal.String())
	assert.Equal(t, "500.00", order.Total.String())

	sum, err := order.LinesTotal()
	require.NoError(t, err)
	assert.True(t, sum.Equal(order.Total))

	id := uuid.New()
	order.AssignID(id)
	for _, l := range order.Lines {
		assert.Equal(t, id, l.OrderID)
	}
}

func TestNewOrderLine_RoundsUnitPrice(t *testing.T) {
	product := &domain.Product{
		ID:          uuid.New(),
		Description: "Eraser",
		SalePrice:   decimal.MustParse("0.335"),
		Stock:       10,
	}

	line, err := domain.NewOrderLine(product, 3)
	require.NoError(t, err)
	assert.Equal(t, "0.34", line.UnitPrice.String())
	assert.Equal(t, "1.02", line.Subtotal.String())
}

func TestErrors_Is(t *testing.T) {
	notFound := domain.NewNotFoundError("product", uuid.New())
	assert.True(t, errors.Is(notFound, domain.ErrDataNotFound))

	stock := &domain.InsufficientStockError{Description: "Notebook", Available: 0, Requested: 1}
	assert.True(t, errors.Is(stock, domain.ErrInsufficientStock))
	assert.Equal(t, `insufficient stock for product "Notebook": available 0, requested 1`, stock.Error())
}

func TestNewPageResult(t *testing.T) {
	p := domain.NewPage(0, 1000)
	assert.Equal(t, domain.Page{Page: 1, Limit: domain.MaxPageLimit}, p)

	res := domain.NewPageResult([]int(nil), 201, p)
	assert.Equal(t, 3, res.Meta.TotalPages)
	assert.NotNil(t, res.Data)
	assert.Equal(t, uint64(200), domain.NewPage(3, 100).Offset())
}

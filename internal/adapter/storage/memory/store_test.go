package memory

import (
	"context"
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store) (*domain.Client, *domain.Product) {
	t.Helper()
	ctx := context.Background()

	client, err := s.CreateClient(ctx, &domain.Client{
		CompanyName: "ACME", CNPJ: "11222333000181", Email: "acme@example.com",
	})
	require.NoError(t, err)

	product, err := s.CreateProduct(ctx, &domain.Product{
		Description: "Widget", SalePrice: decimal.MustParse("10.00"), Stock: 5,
	})
	require.NoError(t, err)

	return client, product
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	s := NewStore()
	_, product := seed(t, s)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context, uow port.UnitOfWork) error {
		p, err := uow.GetProduct(ctx, product.ID)
		require.NoError(t, err)
		p.Stock = 0
		_, err = uow.SaveProduct(ctx, p)
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.ReadProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
}

func TestWithinTx_CommitOrder(t *testing.T) {
	s := NewStore()
	client, product := seed(t, s)
	ctx := context.Background()

	var orderID uuid.UUID
	err := s.WithinTx(ctx, func(ctx context.Context, uow port.UnitOfWork) error {
		p, err := uow.GetProduct(ctx, product.ID)
		if err != nil {
			return err
		}
		p.Stock -= 2
		if p, err = uow.SaveProduct(ctx, p); err != nil {
			return err
		}

		order := domain.NewOrder(client.ID)
		line, err := domain.NewOrderLine(p, 2)
		if err != nil {
			return err
		}
		if err := order.AddLine(line); err != nil {
			return err
		}
		header, err := uow.CreateOrderHeader(ctx, order)
		if err != nil {
			return err
		}
		order.AssignID(header.ID)
		orderID = header.ID
		return uow.CreateLines(ctx, order.Lines)
	})
	require.NoError(t, err)

	order, err := s.ReadOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "20.00", order.Total.String())
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "Widget", order.Lines[0].Product.Description)
	assert.Equal(t, "ACME", order.Client.CompanyName)

	got, err := s.ReadProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	// referenced rows cannot be removed
	assert.ErrorIs(t, s.DeleteProduct(ctx, product.ID), domain.ErrReferencedData)
	assert.ErrorIs(t, s.DeleteClient(ctx, client.ID), domain.ErrReferencedData)

	orders, total, err := s.ListOrders(ctx, domain.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, orders, 1)

	err = s.WithinTx(ctx, func(ctx context.Context, uow port.UnitOfWork) error {
		return uow.DeleteOrder(ctx, order)
	})
	require.NoError(t, err)

	_, err = s.ReadOrder(ctx, orderID)
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
	assert.NoError(t, s.DeleteProduct(ctx, product.ID))
}

func TestCreateClient_DuplicateCNPJ(t *testing.T) {
	s := NewStore()
	client, _ := seed(t, s)

	_, err := s.CreateClient(context.Background(), &domain.Client{
		CompanyName: "Other", CNPJ: client.CNPJ, Email: "other@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrConflictingData)
}

func TestListProducts_Pagination(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := s.CreateProduct(ctx, &domain.Product{
			Description: "P", SalePrice: decimal.MustParse("1.00"), Stock: 1,
		})
		require.NoError(t, err)
	}

	list, total, err := s.ListProducts(ctx, domain.NewPage(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, list, 2)

	list, _, err = s.ListProducts(ctx, domain.NewPage(4, 2))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListClients_SameTimestampOrderedByID(t *testing.T) {
	s := NewStore()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }
	ctx := context.Background()

	for _, cnpj := range []string{"1", "2", "3", "4", "5", "6"} {
		_, err := s.CreateClient(ctx, &domain.Client{
			CompanyName: "C" + cnpj, CNPJ: cnpj, Email: cnpj + "@example.com",
		})
		require.NoError(t, err)
	}

	var ids []uuid.UUID
	for p := 1; p <= 3; p++ {
		list, total, err := s.ListClients(ctx, domain.NewPage(p, 2))
		require.NoError(t, err)
		require.Equal(t, 6, total)
		require.Len(t, list, 2)
		for _, c := range list {
			ids = append(ids, c.ID)
		}
	}

	for i := 1; i < len(ids); i++ {
		assert.Negative(t, bytes.Compare(ids[i-1][:], ids[i][:]), "position %d", i)
	}

	again, _, err := s.ListClients(ctx, domain.NewPage(1, 6))
	require.NoError(t, err)
	for i, c := range again {
		assert.Equal(t, ids[i], c.ID)
	}
}

func TestProductImages(t *testing.T) {
	s := NewStore()
	_, product := seed(t, s)
	ctx := context.Background()

	images, err := s.AddProductImages(ctx, []*domain.ProductImage{
		{ProductID: product.ID, Filename: "a.png", Path: "/uploads/a.png", MimeType: "image/png"},
	})
	require.NoError(t, err)
	require.Len(t, images, 1)

	got, err := s.ReadProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, got.Images, 1)

	_, err = s.ReadProductImage(ctx, uuid.New(), images[0].ID)
	assert.ErrorIs(t, err, domain.ErrDataNotFound)

	require.NoError(t, s.DeleteProductImage(ctx, images[0].ID))
	assert.ErrorIs(t, s.DeleteProductImage(ctx, images[0].ID), domain.ErrDataNotFound)
}

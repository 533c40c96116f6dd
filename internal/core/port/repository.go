package port

import (
	"context"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/repository.go -package=mock github.com/MikeRez0/orderdesk/internal/core/port OrderRepository,UserRepository
type Repository interface {
	UserRepository
	ClientRepository
	ProductRepository
	OrderRepository

	Ping(ctx context.Context) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ClientRepository interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	ReadClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ListClients(ctx context.Context, page domain.Page) ([]*domain.Client, int, error)
}

type ProductRepository interface {
	Transactor

	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReadProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, int, error)

	AddProductImages(ctx context.Context, images []*domain.ProductImage) ([]*domain.ProductImage, error)
	ReadProductImage(ctx context.Context, productID, imageID uuid.UUID) (*domain.ProductImage, error)
	DeleteProductImage(ctx context.Context, imageID uuid.UUID) error
}

type OrderRepository interface {
	Transactor

	// ReadOrder returns the order with its lines, client and line products attached.
	ReadOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, page domain.Page) ([]*domain.Order, int, error)
}

package port

import (
	"context"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/google/uuid"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (*domain.Order, error)
	CancelOrder(ctx context.Context, id uuid.UUID) error
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, page domain.Page) (*domain.PageResult[*domain.Order], error)
}

type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (*domain.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ListClients(ctx context.Context, page domain.Page) (*domain.PageResult[*domain.Client], error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, page domain.Page) (*domain.PageResult[*domain.Product], error)
	UploadImages(ctx context.Context, productID uuid.UUID, uploads []domain.ImageUpload) ([]*domain.ProductImage, error)
	RemoveImage(ctx context.Context, productID, imageID uuid.UUID) error
}

type UserService interface {
	RegisterUser(ctx context.Context, user *domain.User) (string, error)
	LoginUser(ctx context.Context, email string, password string) (string, error)
}

type CnpjService interface {
	LookupCnpj(ctx context.Context, cnpj string) (*domain.CompanyInfo, error)
}

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService struct {
	repo   port.ProductRepository
	images port.ImageStorage
	logger *zap.Logger
	now    func() time.Time
}

func NewProductService(repo port.ProductRepository, images port.ImageStorage,
	logger *zap.Logger) (*ProductService, error) {
	return &ProductService{
		repo:   repo,
		images: images,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	product.SalePrice = product.SalePrice.Trunc(domain.MoneyScale).Pad(domain.MoneyScale)

	newProduct, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Create product", zap.Error(err))
		return nil, err
	}
	return newProduct, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.ReadProduct(ctx, id)
}

// UpdateProduct applies patch under the same row lock the order workflows
// take, so an edit of stock never races an order.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error) {
	var updated *domain.Product
	err := s.repo.WithinTx(ctx, func(ctx context.Context, uow port.UnitOfWork) error {
		product, err := uow.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		if !patch.Apply(product) {
			return domain.ErrNoUpdatedData
		}
		if err := product.Validate(); err != nil {
			return err
		}
		product.SalePrice = product.SalePrice.Trunc(domain.MoneyScale).Pad(domain.MoneyScale)

		updated, err = uow.SaveProduct(ctx, product)
		return err
	})
	if err != nil {
		if isFatal(err) {
			s.logger.Error("Update product", zap.Error(err))
		}
		return nil, err
	}

	return s.repo.ReadProduct(ctx, updated.ID)
}

// DeleteProduct removes the product row, then its image files.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if isFatal(err) {
			s.logger.Error("Delete product", zap.Error(err))
		}
		return err
	}

	for _, img := range product.Images {
		s.removeFile(ctx, img.Filename)
	}
	return nil
}

func (s *ProductService) ListProducts(ctx context.Context, page domain.Page) (*domain.PageResult[*domain.Product], error) {
	list, total, err := s.repo.ListProducts(ctx, page)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	return domain.NewPageResult(list, total, page), nil
}

// UploadImages stores the files and records them against the product. Files
// already written are removed again when a later step fails.
func (s *ProductService) UploadImages(ctx context.Context, productID uuid.UUID,
	uploads []domain.ImageUpload) ([]*domain.ProductImage, error) {
	if _, err := s.repo.ReadProduct(ctx, productID); err != nil {
		return nil, err
	}

	images := make([]*domain.ProductImage, 0, len(uploads))
	cleanup := func() {
		for _, img := range images {
			s.removeFile(ctx, img.Filename)
		}
	}

	for _, u := range uploads {
		img, err := s.storeUpload(ctx, productID, u)
		if err != nil {
			cleanup()
			s.logger.Error("Store image", zap.String("file", u.Filename), zap.Error(err))
			return nil, err
		}
		images = append(images, img)
	}

	saved, err := s.repo.AddProductImages(ctx, images)
	if err != nil {
		cleanup()
		s.logger.Error("Add product images", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (s *ProductService) RemoveImage(ctx context.Context, productID, imageID uuid.UUID) error {
	img, err := s.repo.ReadProductImage(ctx, productID, imageID)
	if err != nil {
		return err
	}

	s.removeFile(ctx, img.Filename)

	if err := s.repo.DeleteProductImage(ctx, img.ID); err != nil {
		s.logger.Error("Delete product image", zap.Error(err))
		return err
	}
	return nil
}

func (s *ProductService) storeUpload(ctx context.Context, productID uuid.UUID,
	u domain.ImageUpload) (*domain.ProductImage, error) {
	content, err := u.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", u.Filename, err)
	}
	defer func() { _ = content.Close() }()

	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.New(), strings.ToLower(filepath.Ext(u.Filename)))
	path, err := s.images.Save(ctx, name, content)
	if err != nil {
		return nil, err
	}

	return &domain.ProductImage{
		ProductID: productID,
		Filename:  name,
		Path:      path,
		MimeType:  u.MimeType,
	}, nil
}

// removeFile is best effort.
func (s *ProductService) removeFile(ctx context.Context, filename string) {
	if err := s.images.Remove(ctx, filename); err != nil {
		s.logger.Warn("Remove image file", zap.String("file", filename), zap.Error(err))
	}
}

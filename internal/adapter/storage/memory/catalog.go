package memory

import (
	"context"
	"sort"
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/google/uuid"
)

func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	err := s.write(func(t *tables) error {
		for _, u := range t.users {
			if u.Email == user.Email {
				return domain.ErrConflictingData
			}
		}
		user.ID = uuid.New()
		user.CreatedAt = s.now()
		user.UpdatedAt = user.CreatedAt
		t.users[user.ID] = *user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	var found *domain.User
	err := s.read(func(t *tables) error {
		for _, u := range t.users {
			if u.Email == email {
				found = &u
				return nil
			}
		}
		return domain.ErrDataNotFound
	})
	return found, err
}

func (s *Store) CreateClient(_ context.Context, client *domain.Client) (*domain.Client, error) {
	err := s.write(func(t *tables) error {
		for _, c := range t.clients {
			if c.CNPJ == client.CNPJ {
				return domain.ErrConflictingData
			}
		}
		client.ID = uuid.New()
		client.CreatedAt = s.now()
		client.UpdatedAt = client.CreatedAt
		t.clients[client.ID] = *client
		return nil
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Store) ReadClient(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	var client *domain.Client
	err := s.read(func(t *tables) error {
		c, ok := t.clients[id]
		if !ok {
			return domain.NewNotFoundError("client", id)
		}
		client = &c
		return nil
	})
	return client, err
}

func (s *Store) GetClientByCNPJ(_ context.Context, cnpj string) (*domain.Client, error) {
	var client *domain.Client
	err := s.read(func(t *tables) error {
		for _, c := range t.clients {
			if c.CNPJ == cnpj {
				client = &c
				return nil
			}
		}
		return domain.ErrDataNotFound
	})
	return client, err
}

func (s *Store) UpdateClient(_ context.Context, client *domain.Client) (*domain.Client, error) {
	err := s.write(func(t *tables) error {
		current, ok := t.clients[client.ID]
		if !ok {
			return domain.NewNotFoundError("client", client.ID)
		}
		for _, c := range t.clients {
			if c.ID != client.ID && c.CNPJ == client.CNPJ {
				return domain.ErrConflictingData
			}
		}
		client.CreatedAt = current.CreatedAt
		client.UpdatedAt = s.now()
		t.clients[client.ID] = *client
		return nil
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Store) DeleteClient(_ context.Context, id uuid.UUID) error {
	return s.write(func(t *tables) error {
		if _, ok := t.clients[id]; !ok {
			return domain.NewNotFoundError("client", id)
		}
		for _, o := range t.orders {
			if o.ClientID == id {
				return domain.ErrReferencedData
			}
		}
		delete(t.clients, id)
		return nil
	})
}

func (s *Store) ListClients(_ context.Context, p domain.Page) ([]*domain.Client, int, error) {
	var (
		list  []*domain.Client
		total int
	)
	err := s.read(func(t *tables) error {
		all := make([]*domain.Client, 0, len(t.clients))
		for _, c := range t.clients {
			c := c
			all = append(all, &c)
		}
		total = len(all)
		list = page(all, func(c *domain.Client) (time.Time, uuid.UUID) { return c.CreatedAt, c.ID }, p)
		return nil
	})
	return list, total, err
}

func (s *Store) CreateProduct(_ context.Context, product *domain.Product) (*domain.Product, error) {
	err := s.write(func(t *tables) error {
		product.ID = uuid.New()
		product.CreatedAt = s.now()
		product.UpdatedAt = product.CreatedAt
		stored := *product
		stored.Images = nil
		t.products[product.ID] = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	product.Images = []*domain.ProductImage{}
	return product, nil
}

func (s *Store) ReadProduct(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	var product *domain.Product
	err := s.read(func(t *tables) error {
		p, ok := t.products[id]
		if !ok {
			return domain.NewNotFoundError("product", id)
		}
		p.Images = t.productImages(id)
		product = &p
		return nil
	})
	return product, err
}

func (s *Store) DeleteProduct(_ context.Context, id uuid.UUID) error {
	return s.write(func(t *tables) error {
		if _, ok := t.products[id]; !ok {
			return domain.NewNotFoundError("product", id)
		}
		for _, l := range t.lines {
			if l.ProductID == id {
				return domain.ErrReferencedData
			}
		}
		for imgID, img := range t.images {
			if img.ProductID == id {
				delete(t.images, imgID)
			}
		}
		delete(t.products, id)
		return nil
	})
}

func (s *Store) ListProducts(_ context.Context, p domain.Page) ([]*domain.Product, int, error) {
	var (
		list  []*domain.Product
		total int
	)
	err := s.read(func(t *tables) error {
		all := make([]*domain.Product, 0, len(t.products))
		for _, pr := range t.products {
			pr := pr
			pr.Images = t.productImages(pr.ID)
			all = append(all, &pr)
		}
		total = len(all)
		list = page(all, func(pr *domain.Product) (time.Time, uuid.UUID) { return pr.CreatedAt, pr.ID }, p)
		return nil
	})
	return list, total, err
}

func (s *Store) AddProductImages(_ context.Context, images []*domain.ProductImage) ([]*domain.ProductImage, error) {
	err := s.write(func(t *tables) error {
		for _, img := range images {
			if _, ok := t.products[img.ProductID]; !ok {
				return domain.NewNotFoundError("product", img.ProductID)
			}
		}
		for _, img := range images {
			img.ID = uuid.New()
			img.CreatedAt = s.now()
			t.images[img.ID] = *img
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (s *Store) ReadProductImage(_ context.Context, productID, imageID uuid.UUID) (*domain.ProductImage, error) {
	var image *domain.ProductImage
	err := s.read(func(t *tables) error {
		img, ok := t.images[imageID]
		if !ok || img.ProductID != productID {
			return domain.NewNotFoundError("image", imageID)
		}
		image = &img
		return nil
	})
	return image, err
}

func (s *Store) DeleteProductImage(_ context.Context, imageID uuid.UUID) error {
	return s.write(func(t *tables) error {
		if _, ok := t.images[imageID]; !ok {
			return domain.NewNotFoundError("image", imageID)
		}
		delete(t.images, imageID)
		return nil
	})
}

func (t *tables) productImages(productID uuid.UUID) []*domain.ProductImage {
	images := make([]*domain.ProductImage, 0)
	for _, img := range t.images {
		if img.ProductID == productID {
			img := img
			images = append(images, &img)
		}
	}
	sortByCreated(images)
	return images
}

func sortByCreated(images []*domain.ProductImage) {
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].CreatedAt.Before(images[j].CreatedAt)
	})
}

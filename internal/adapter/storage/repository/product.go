package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	productColumns = []string{"id", "description", "sale_price", "stock", "created_at", "updated_at"}
	imageColumns   = []string{"id", "product_id", "filename", "path", "mime_type", "created_at"}
)

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := domain.Product{}
	err := row.Scan(&p.ID, &p.Description, &p.SalePrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanImage(row pgx.Row) (*domain.ProductImage, error) {
	img := domain.ProductImage{}
	err := row.Scan(&img.ID, &img.ProductID, &img.Filename, &img.Path, &img.MimeType, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Insert("products").
		Columns("description", "sale_price", "stock").
		Values(product.Description, product.SalePrice, product.Stock).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	product.Images = []*domain.ProductImage{}
	return product, nil
}

func (r *Repository) ReadProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := readProduct(ctx, r.db, r.db.QueryBuilder, id, "")
	if err != nil {
		return nil, err
	}

	images, err := r.imagesOf(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	product.Images = images[id]
	if product.Images == nil {
		product.Images = []*domain.ProductImage{}
	}
	return product, nil
}

func readProduct(ctx context.Context, q querier, qb *sq.StatementBuilderType, id uuid.UUID, lock string) (*domain.Product, error) {
	statement := qb.Select(productColumns...).From("products").Where(sq.Eq{"id": id})
	if lock != "" {
		statement = statement.Suffix(lock)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product, err := scanProduct(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("product", id)
		}
		return nil, mapError(err)
	}
	return product, nil
}

// DeleteProduct removes the product and its image rows. A product referenced
// by order lines is kept and ErrReferencedData returned.
func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.db.QueryBuilder.Delete("products").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("product", id)
	}
	return nil
}

func (r *Repository) ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, int, error) {
	total, err := count(ctx, r.db, r.db.QueryBuilder, "products")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := paginate(r.db.QueryBuilder.Select(productColumns...).From("products"), page).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, product)
		ids = append(ids, product.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	images, err := r.imagesOf(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, p := range list {
		p.Images = images[p.ID]
		if p.Images == nil {
			p.Images = []*domain.ProductImage{}
		}
	}
	return list, total, nil
}

func (r *Repository) imagesOf(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]*domain.ProductImage, error) {
	images := make(map[uuid.UUID][]*domain.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return images, nil
	}

	sql, args, err := r.db.QueryBuilder.
		Select(imageColumns...).
		From("product_images").
		Where(sq.Eq{"product_id": productIDs}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images[img.ProductID] = append(images[img.ProductID], img)
	}
	return images, rows.Err()
}

func (r *Repository) AddProductImages(ctx context.Context, images []*domain.ProductImage) ([]*domain.ProductImage, error) {
	if len(images) == 0 {
		return images, nil
	}

	statement := r.db.QueryBuilder.
		Insert("product_images").
		Columns("product_id", "filename", "path", "mime_type").
		Suffix("RETURNING id, created_at")
	for _, img := range images {
		statement = statement.Values(img.ProductID, img.Filename, img.Path, img.MimeType)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		i := 0
		for rows.Next() {
			if err := rows.Scan(&images[i].ID, &images[i].CreatedAt); err != nil {
				return err
			}
			i++
		}
		return rows.Err()
	})
	if err != nil {
		if errors.Is(mapError(err), domain.ErrReferencedData) {
			return nil, domain.NewNotFoundError("product", images[0].ProductID)
		}
		return nil, mapError(err)
	}
	return images, nil
}

func (r *Repository) ReadProductImage(ctx context.Context, productID, imageID uuid.UUID) (*domain.ProductImage, error) {
	sql, args, err := r.db.QueryBuilder.
		Select(imageColumns...).
		From("product_images").
		Where(sq.Eq{"id": imageID, "product_id": productID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	img, err := scanImage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("image", imageID)
		}
		return nil, err
	}
	return img, nil
}

func (r *Repository) DeleteProductImage(ctx context.Context, imageID uuid.UUID) error {
	sql, args, err := r.db.QueryBuilder.Delete("product_images").Where(sq.Eq{"id": imageID}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("image", imageID)
	}
	return nil
}

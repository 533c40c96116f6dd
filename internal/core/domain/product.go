package domain

import (
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type Product struct {
	ID          uuid.UUID
	Description string
	SalePrice   decimal.Decimal
	Stock       int
	Images      []*ProductImage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Filename  string
	Path      string
	MimeType  string
	CreatedAt time.Time
}

// ProductPatch carries the fields of a partial product update; nil means unchanged.
type ProductPatch struct {
	Description *string
	SalePrice   *decimal.Decimal
	Stock       *int
}

// ImageUpload is one file received for a product.
type ImageUpload struct {
	Filename string
	MimeType string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

var imageMimeType = regexp.MustCompile(`/(jpg|jpeg|png|gif|webp)$`)

func (p *Product) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(p.Description) == "" {
		errs.add("description", "must not be empty")
	} else if len(p.Description) > 500 {
		errs.add("description", "must be at most 500 characters")
	}
	if p.SalePrice.IsNeg() {
		errs.add("salePrice", "must not be negative")
	}
	if p.SalePrice.Scale() > MoneyScale && !p.SalePrice.Equal(p.SalePrice.Trunc(MoneyScale)) {
		errs.add("salePrice", "must have at most 2 decimal places")
	}
	if p.Stock < 0 {
		errs.add("stock", "must not be negative")
	}
	return errs.errOrNil()
}

// Apply copies the set fields of pp onto p and reports whether anything was set.
func (pp ProductPatch) Apply(p *Product) bool {
	changed := false
	if pp.Description != nil {
		p.Description = *pp.Description
		changed = true
	}
	if pp.SalePrice != nil {
		p.SalePrice = *pp.SalePrice
		changed = true
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
		changed = true
	}
	return changed
}

// ValidateImageUploads checks count, size and mime type of a batch of uploads.
func ValidateImageUploads(uploads []ImageUpload, maxCount int, maxSize int64) error {
	var errs ValidationErrors
	if len(uploads) == 0 {
		errs.add("images", "at least one file is required")
	}
	if len(uploads) > maxCount {
		errs.add("images", "too many files")
	}
	for _, u := range uploads {
		if !imageMimeType.MatchString(u.MimeType) {
			errs.add(u.Filename, "only image files are allowed")
		}
		if u.Size > maxSize {
			errs.add(u.Filename, "file is too large")
		}
	}
	return errs.errOrNil()
}

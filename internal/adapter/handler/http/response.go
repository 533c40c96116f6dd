package http

import (
	"bytes"
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/govalues/decimal"
)

// jsonDecimal is a money value written as a JSON number with two decimals.
// It reads both numbers and numeric strings.
type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).Pad(domain.MoneyScale).String()), nil
}

func (j *jsonDecimal) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	d, err := decimal.Parse(string(data))
	if err != nil {
		return err
	}
	*j = jsonDecimal(d)
	return nil
}

type clientResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	CNPJ        string    `json:"cnpj"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newClientResponse(c *domain.Client) *clientResponse {
	if c == nil {
		return nil
	}
	return &clientResponse{
		ID:          c.ID.String(),
		CompanyName: c.CompanyName,
		CNPJ:        c.CNPJ,
		Email:       c.Email,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type imageResponse struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

func newImageResponse(img *domain.ProductImage) imageResponse {
	return imageResponse{
		ID:        img.ID.String(),
		Filename:  img.Filename,
		Path:      img.Path,
		MimeType:  img.MimeType,
		CreatedAt: img.CreatedAt,
	}
}

type productResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	SalePrice   jsonDecimal     `json:"salePrice"`
	Stock       int             `json:"stock"`
	Images      []imageResponse `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func newProductResponse(p *domain.Product) *productResponse {
	if p == nil {
		return nil
	}
	images := make([]imageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, newImageResponse(img))
	}
	return &productResponse{
		ID:          p.ID.String(),
		Description: p.Description,
		SalePrice:   jsonDecimal(p.SalePrice),
		Stock:       p.Stock,
		Images:      images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type orderLineResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Product   *productResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	UnitPrice jsonDecimal      `json:"unitPrice"`
	Subtotal  jsonDecimal      `json:"subtotal"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	ClientID  string              `json:"clientId"`
	Client    *clientResponse     `json:"client,omitempty"`
	Items     []orderLineResponse `json:"items"`
	Total     jsonDecimal         `json:"total"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func newOrderResponse(o *domain.Order) *orderResponse {
	items := make([]orderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, orderLineResponse{
			ID:        l.ID.String(),
			ProductID: l.ProductID.String(),
			Product:   newProductResponse(l.Product),
			Quantity:  l.Quantity,
			UnitPrice: jsonDecimal(l.UnitPrice),
			Subtotal:  jsonDecimal(l.Subtotal),
		})
	}
	return &orderResponse{
		ID:        o.ID.String(),
		ClientID:  o.ClientID.String(),
		Client:    newClientResponse(o.Client),
		Items:     items,
		Total:     jsonDecimal(o.Total),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

type pageResponse[T any] struct {
	Data []T             `json:"data"`
	Meta domain.PageMeta `json:"meta"`
}

func newPageResponse[E, T any](page *domain.PageResult[E], convert func(E) T) pageResponse[T] {
	data := make([]T, 0, len(page.Data))
	for _, e := range page.Data {
		data = append(data, convert(e))
	}
	return pageResponse[T]{Data: data, Meta: page.Meta}
}

type tokenResponse struct {
	Token string `json:"token"`
}

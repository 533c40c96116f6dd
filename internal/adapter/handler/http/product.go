package http

import (
	"io"
	"net/http"

	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const imagesField = "images"

type ProductHandler struct {
	Handler
	service      port.ProductService
	maxImages    int
	maxImageSize int64
}

func NewProductHandler(service port.ProductService, conf *config.Storage, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler:      *NewHandler(logger),
		service:      service,
		maxImages:    conf.MaxImages,
		maxImageSize: conf.MaxImageSize,
	}, nil
}

type productRequest struct {
	Description *string      `json:"description"`
	SalePrice   *jsonDecimal `json:"salePrice"`
	Stock       *int         `json:"stock"`
}

func (r productRequest) patch() domain.ProductPatch {
	p := domain.ProductPatch{Description: r.Description, Stock: r.Stock}
	if r.SalePrice != nil {
		price := decimal.Decimal(*r.SalePrice)
		p.SalePrice = &price
	}
	return p
}

func (ph *ProductHandler) CreateProduct(ctx *gin.Context) {
	req := productRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	var errs domain.ValidationErrors
	if req.SalePrice == nil {
		errs = append(errs, domain.FieldError{Field: "salePrice", Message: "is required"})
	}
	if req.Stock == nil {
		errs = append(errs, domain.FieldError{Field: "stock", Message: "is required"})
	}
	if len(errs) > 0 {
		ph.handleValidationError(ctx, errs)
		return
	}

	product := &domain.Product{}
	req.patch().Apply(product)

	created, err := ph.service.CreateProduct(ctx, product)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccessWithStatus(ctx, newProductResponse(created), http.StatusCreated)
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.GetProduct(ctx, id)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) UpdateProduct(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	req := productRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.UpdateProduct(ctx, id, req.patch())
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) DeleteProduct(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	if err := ph.service.DeleteProduct(ctx, id); err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	page, err := pageQuery(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	list, err := ph.service.ListProducts(ctx, page)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newPageResponse(list, newProductResponse))
}

// UploadImages accepts multipart files in the "images" field.
func (ph *ProductHandler) UploadImages(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	// room for every file at its max size plus form overhead
	limit := int64(ph.maxImages)*ph.maxImageSize + 1<<20
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)

	form, err := ctx.MultipartForm()
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	files := form.File[imagesField]
	uploads := make([]domain.ImageUpload, 0, len(files))
	for _, fh := range files {
		fh := fh
		uploads = append(uploads, domain.ImageUpload{
			Filename: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Size:     fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	if err := domain.ValidateImageUploads(uploads, ph.maxImages, ph.maxImageSize); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	images, err := ph.service.UploadImages(ctx, id, uploads)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]imageResponse, 0, len(images))
	for _, img := range images {
		result = append(result, newImageResponse(img))
	}
	ph.handleSuccessWithStatus(ctx, result, http.StatusCreated)
}

func (ph *ProductHandler) RemoveImage(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	imageID, err := pathID(ctx, "imageId")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	if err := ph.service.RemoveImage(ctx, id, imageID); err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

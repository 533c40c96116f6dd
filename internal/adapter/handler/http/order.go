package http

import (
	"net/http"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type placeOrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type placeOrderRequest struct {
	ClientID uuid.UUID        `json:"clientId"`
	Items    []placeOrderItem `json:"items"`
}

// PlaceOrder godoc
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		placeOrderRequest	true	"Order"
//	@Success	201		{object}	orderResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/api/orders [post]
func (oh *OrderHandler) PlaceOrder(ctx *gin.Context) {
	req := placeOrderRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.PlaceOrderItem, 0, len(req.Items))
	for _, i := range req.Items {
		items = append(items, domain.PlaceOrderItem{ProductID: i.ProductID, Quantity: i.Quantity})
	}

	order, err := oh.service.PlaceOrder(ctx, domain.PlaceOrderRequest{ClientID: req.ClientID, Items: items})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	page, err := pageQuery(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	list, err := oh.service.ListOrders(ctx, page)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newPageResponse(list, newOrderResponse))
}

// CancelOrder returns the order's quantities to stock and deletes it.
func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.CancelOrder(ctx, id); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

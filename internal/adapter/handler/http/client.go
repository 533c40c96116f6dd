package http

import (
	"net/http"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ClientHandler struct {
	Handler
	service port.ClientService
}

func NewClientHandler(service port.ClientService, logger *zap.Logger) (*ClientHandler, error) {
	return &ClientHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type clientRequest struct {
	CompanyName *string `json:"companyName"`
	CNPJ        *string `json:"cnpj"`
	Email       *string `json:"email"`
}

func (r clientRequest) patch() domain.ClientPatch {
	return domain.ClientPatch{CompanyName: r.CompanyName, CNPJ: r.CNPJ, Email: r.Email}
}

func (ch *ClientHandler) CreateClient(ctx *gin.Context) {
	req := clientRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	client := &domain.Client{}
	req.patch().Apply(client)

	created, err := ch.service.CreateClient(ctx, client)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, newClientResponse(created), http.StatusCreated)
}

func (ch *ClientHandler) GetClient(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	client, err := ch.service.GetClient(ctx, id)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccess(ctx, newClientResponse(client))
}

func (ch *ClientHandler) UpdateClient(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}
	req := clientRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	client, err := ch.service.UpdateClient(ctx, id, req.patch())
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccess(ctx, newClientResponse(client))
}

func (ch *ClientHandler) DeleteClient(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	if err := ch.service.DeleteClient(ctx, id); err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (ch *ClientHandler) ListClients(ctx *gin.Context) {
	page, err := pageQuery(ctx)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	list, err := ch.service.ListClients(ctx, page)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccess(ctx, newPageResponse(list, newClientResponse))
}

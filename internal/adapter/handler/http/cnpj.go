package http

import (
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CnpjHandler struct {
	Handler
	service port.CnpjService
}

func NewCnpjHandler(service port.CnpjService, logger *zap.Logger) (*CnpjHandler, error) {
	return &CnpjHandler{Handler: *NewHandler(logger), service: service}, nil
}

type cnpjResponse struct {
	CNPJ        string `json:"cnpj"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
}

func (ch *CnpjHandler) LookupCnpj(ctx *gin.Context) {
	info, err := ch.service.LookupCnpj(ctx, ctx.Param("cnpj"))
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, cnpjResponse{
		CNPJ:        info.CNPJ,
		CompanyName: info.CompanyName,
		Email:       info.Email,
	})
}

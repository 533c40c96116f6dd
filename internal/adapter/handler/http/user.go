package http

import (
	"net/http"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.UserService
}

type registerRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewUserHandler(service port.UserService, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{Handler: *NewHandler(logger), service: service}, nil
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := registerRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}

	token, err := uh.service.RegisterUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, tokenResponse{Token: token}, http.StatusCreated)
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, tokenResponse{Token: token})
}

package http

import (
	"strings"
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

func (h *Handler) authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Fields(header)
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			h.handleAbort(ctx, err)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

// roleCheck lets through only users holding one of roles. Runs after authCheck.
func (h *Handler) roleCheck(roles ...domain.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := getAuthPayload(ctx)
		for _, r := range roles {
			if payload.Role == r {
				ctx.Next()
				return
			}
		}
		h.handleAbort(ctx, domain.ErrForbidden)
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		logger.Debug("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Int("size", ctx.Writer.Size()))
	}
}

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// errorStatusMap is walked in order with errors.Is, so typed errors resolve
// to the sentinel they wrap.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{domain.ErrInternal, http.StatusInternalServerError},
	{domain.ErrDataNotFound, http.StatusNotFound},
	{domain.ErrConflictingData, http.StatusConflict},
	{domain.ErrReferencedData, http.StatusConflict},
	{domain.ErrConcurrentUpdate, http.StatusConflict},
	{domain.ErrInsufficientStock, http.StatusBadRequest},

	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationType, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrExpiredToken, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},

	{domain.ErrNoUpdatedData, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},

	{domain.ErrCnpjNotFound, http.StatusNotFound},
	{domain.ErrCnpjRateLimited, http.StatusTooManyRequests},
	{domain.ErrCnpjUnavailable, http.StatusBadGateway},
}

func statusOf(err error) (int, bool) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status, true
		}
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Errors     []domain.FieldError `json:"errors,omitempty"`
}

func newErrorResponse(status int, err error) errorResponse {
	resp := errorResponse{StatusCode: status, Message: err.Error()}
	if status == http.StatusInternalServerError {
		resp.Message = domain.ErrInternal.Error()
	}
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Message = domain.ErrBadRequest.Error()
		resp.Errors = verrs
	}
	return resp
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends a 400 for a request that could not be bound
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.String("path", ctx.FullPath()), zap.Error(err))
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, verrs))
		return
	}
	ctx.JSON(http.StatusBadRequest, errorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    domain.ErrBadRequest.Error(),
		Errors:     []domain.FieldError{{Field: "body", Message: err.Error()}},
	})
}

// handleAbort writes the error response and stops the handler chain.
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := statusOf(err)
	if !ok {
		h.logger.Error("aborting request", zap.Error(err))
	}
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(statusCode, newErrorResponse(statusCode, err))
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusOf(err)
	if !ok {
		h.logger.Error("error processing request", zap.String("path", ctx.FullPath()), zap.Error(err))
	}
	_ = ctx.Error(err)
	ctx.JSON(statusCode, newErrorResponse(statusCode, err))
}

// handleSuccessWithStatus sends data with status, or an empty body when data is nil
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

// pathID parses a uuid path parameter.
func pathID(ctx *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, domain.ValidationErrors{{Field: name, Message: "must be a valid uuid"}}
	}
	return id, nil
}

// pageQuery reads page and limit. Missing values take the defaults.
func pageQuery(ctx *gin.Context) (domain.Page, error) {
	var errs domain.ValidationErrors
	page, limit := 1, domain.DefaultPageLimit

	if v, ok := ctx.GetQuery("page"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer of at least 1"})
		}
		page = n
	}
	if v, ok := ctx.GetQuery("limit"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > domain.MaxPageLimit {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer between 1 and 100"})
		}
		limit = n
	}
	if len(errs) > 0 {
		return domain.Page{}, errs
	}
	return domain.NewPage(page, limit), nil
}

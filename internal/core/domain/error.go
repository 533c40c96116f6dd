package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound      = errors.New("data not found")
	ErrNoUpdatedData     = errors.New("no data to update")
	ErrConflictingData   = errors.New("data conflicts with existing data in unique column")
	ErrReferencedData    = errors.New("data is referenced by other records")
	ErrConcurrentUpdate  = errors.New("data was changed by a concurrent transaction")
	ErrInsufficientStock = errors.New("insufficient stock")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenDuration              = errors.New("invalid token duration format")
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Company registry errors.
	ErrCnpjNotFound    = errors.New("cnpj not found")
	ErrCnpjRateLimited = errors.New("cnpj lookup rate limit exceeded")
	ErrCnpjUnavailable = errors.New("cnpj lookup failed")
)

// NotFoundError names the entity that did not resolve.
// It matches ErrDataNotFound with errors.Is.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity string, id fmt.Stringer) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id.String()}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrDataNotFound
}

// InsufficientStockError is returned when an order line asks for more units
// than the product has in stock.
type InsufficientStockError struct {
	Description string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: available %d, requested %d",
		e.Description, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// FieldError is a single failed input rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed rule of an input.
// It matches ErrBadRequest with errors.Is.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, f := range v {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrBadRequest
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// errOrNil keeps a nil ValidationErrors from turning into a non-nil error.
func (v ValidationErrors) errOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

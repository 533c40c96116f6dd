package service

import (
	"errors"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
)

var businessErrors = []error{
	domain.ErrDataNotFound,
	domain.ErrInsufficientStock,
	domain.ErrBadRequest,
	domain.ErrConflictingData,
	domain.ErrReferencedData,
	domain.ErrConcurrentUpdate,
	domain.ErrNoUpdatedData,
	domain.ErrInvalidCredentials,
}

// isFatal reports whether err is a storage or programming failure rather
// than an expected business outcome.
func isFatal(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return false
		}
	}
	return true
}

package port

import (
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/google/uuid"
)

type TokenPayload struct {
	UserID uuid.UUID   `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/MikeRez0/orderdesk/internal/core/utils"
	"go.uber.org/zap"
)

type UserService struct {
	repo         port.UserRepository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewUserService(repo port.UserRepository, tokenService port.TokenService,
	logger *zap.Logger) (*UserService, error) {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

// RegisterUser stores a new account and returns an access token for it.
// user.Password is expected in plain text.
func (s *UserService) RegisterUser(ctx context.Context, user *domain.User) (string, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := user.Validate(); err != nil {
		return "", err
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return "", domain.ErrInternal
	}

	if exUser != nil {
		return "", domain.ErrConflictingData
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return "", domain.ErrInternal
	}
	user.Password = hashed

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return "", err
		}
		s.logger.Error("Create user", zap.Error(err))
		return "", domain.ErrInternal
	}

	token, err := s.tokenService.CreateToken(newUser)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *UserService) LoginUser(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		s.logger.Error("Get user", zap.Error(err))
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

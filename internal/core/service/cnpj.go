package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/MikeRez0/orderdesk/internal/core/utils"
	"go.uber.org/zap"
)

type CnpjService struct {
	client port.CnpjClient
	logger *zap.Logger
}

func NewCnpjService(client port.CnpjClient, logger *zap.Logger) (*CnpjService, error) {
	return &CnpjService{client: client, logger: logger}, nil
}

func (s *CnpjService) LookupCnpj(ctx context.Context, cnpj string) (*domain.CompanyInfo, error) {
	digits := utils.OnlyDigits(cnpj)
	if digits == "" {
		return nil, domain.ValidationErrors{{Field: "cnpj", Message: "must contain digits"}}
	}

	info, err := s.client.Lookup(ctx, digits)
	if err != nil {
		if !errors.Is(err, domain.ErrCnpjNotFound) && !errors.Is(err, domain.ErrCnpjRateLimited) {
			s.logger.Warn("Cnpj lookup", zap.String("cnpj", digits), zap.Error(err))
		}
		return nil, err
	}

	if info.CNPJ == "" {
		info.CNPJ = digits
	}
	return info, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClientService struct {
	repo   port.ClientRepository
	logger *zap.Logger
}

func NewClientService(repo port.ClientRepository, logger *zap.Logger) (*ClientService, error) {
	return &ClientService{repo: repo, logger: logger}, nil
}

func (s *ClientService) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkCNPJFree(ctx, client.CNPJ, uuid.Nil); err != nil {
		return nil, err
	}

	newClient, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		if !errors.Is(err, domain.ErrConflictingData) {
			s.logger.Error("Create client", zap.Error(err))
		}
		return nil, err
	}
	return newClient, nil
}

func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.ReadClient(ctx, id)
}

func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (*domain.Client, error) {
	client, err := s.repo.ReadClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if !patch.Apply(client) {
		return nil, domain.ErrNoUpdatedData
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	if patch.CNPJ != nil {
		if err := s.checkCNPJFree(ctx, client.CNPJ, client.ID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.UpdateClient(ctx, client)
	if err != nil {
		if isFatal(err) {
			s.logger.Error("Update client", zap.Error(err))
		}
		return nil, err
	}
	return updated, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteClient(ctx, id)
	if err != nil && isFatal(err) {
		s.logger.Error("Delete client", zap.Error(err))
	}
	return err
}

func (s *ClientService) ListClients(ctx context.Context, page domain.Page) (*domain.PageResult[*domain.Client], error) {
	list, total, err := s.repo.ListClients(ctx, page)
	if err != nil {
		s.logger.Error("List clients", zap.Error(err))
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return domain.NewPageResult(list, total, page), nil
}

func (s *ClientService) checkCNPJFree(ctx context.Context, cnpj string, owner uuid.UUID) error {
	existing, err := s.repo.GetClientByCNPJ(ctx, cnpj)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil
		}
		s.logger.Error("Get client by cnpj", zap.Error(err))
		return err
	}
	if existing.ID != owner {
		return domain.ErrConflictingData
	}
	return nil
}

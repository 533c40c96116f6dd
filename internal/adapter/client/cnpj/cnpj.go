package cnpj

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

type CnpjClient struct {
	logger *zap.Logger
	host   string
	client *http.Client
}

func NewCnpjClient(cfg *config.Cnpj, log *zap.Logger) (*CnpjClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("cnpj registry url is empty")
	}
	return &CnpjClient{
		host:   strings.TrimRight(cfg.BaseURL, "/"),
		logger: log,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type cnpjResponse struct {
	RazaoSocial     string `json:"razao_social"`
	Estabelecimento *struct {
		Cnpj  string `json:"cnpj"`
		Email string `json:"email"`
	} `json:"estabelecimento"`
}

func (c *CnpjClient) Lookup(ctx context.Context, cnpj string) (*domain.CompanyInfo, error) {
	requestStr := c.host + "/cnpj/" + cnpj
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: error on %s : %w", domain.ErrCnpjUnavailable, requestStr, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Fire request for cnpj", zap.String("cnpj", cnpj))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request error %s : %w", domain.ErrCnpjUnavailable, requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrCnpjNotFound
	case http.StatusTooManyRequests:
		c.logger.Debug("Cnpj registry rate limit",
			zap.String("cnpj", cnpj),
			zap.String("Retry-After", resp.Header.Get("Retry-After")))
		return nil, domain.ErrCnpjRateLimited
	default:
		return nil, fmt.Errorf("%w: bad response %v for request %s",
			domain.ErrCnpjUnavailable, resp.StatusCode, requestStr)
	}

	var result cnpjResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("%w: error on response decode: %w", domain.ErrCnpjUnavailable, err)
	}

	info := domain.CompanyInfo{CompanyName: result.RazaoSocial}
	if result.Estabelecimento != nil {
		info.CNPJ = result.Estabelecimento.Cnpj
		info.Email = result.Estabelecimento.Email
	}
	return &info, nil
}

var _ port.CnpjClient = (*CnpjClient)(nil)

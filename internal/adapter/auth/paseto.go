package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
)

const payloadClaim = "payload"

type PasetoToken struct {
	parser *paseto.Parser
	key    paseto.V4SymmetricKey
	ttl    time.Duration
	now    func() time.Time
}

func New(conf *config.Auth) (*PasetoToken, error) {
	if conf.TokenTTL <= 0 {
		return nil, domain.ErrTokenDuration
	}

	key := paseto.NewV4SymmetricKey()
	if conf.SymmetricKey != "" {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(conf.SymmetricKey)
		if err != nil {
			return nil, fmt.Errorf("error parsing token key: %w", err)
		}
	}

	// expiry is checked by VerifyToken so it can be told apart from a bad token
	parser := paseto.NewParserWithoutExpiryCheck()

	return &PasetoToken{
		parser: &parser,
		key:    key,
		ttl:    conf.TokenTTL,
		now:    time.Now,
	}, nil
}

func (p *PasetoToken) CreateToken(user *domain.User) (string, error) {
	now := p.now()
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))

	payload := port.TokenPayload{UserID: user.ID, Email: user.Email, Role: user.Role}
	err := token.Set(payloadClaim, payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	exp, err := parsedToken.GetExpiration()
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if !p.now().Before(exp) {
		return nil, domain.ErrExpiredToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}

var _ port.TokenService = (*PasetoToken)(nil)

package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID          uuid.UUID
	CompanyName string
	CNPJ        string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClientPatch carries the fields of a partial client update; nil means unchanged.
type ClientPatch struct {
	CompanyName *string
	CNPJ        *string
	Email       *string
}

func (c *Client) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(c.CompanyName) == "" {
		errs.add("companyName", "must not be empty")
	}
	if strings.TrimSpace(c.CNPJ) == "" {
		errs.add("cnpj", "must not be empty")
	} else if len(c.CNPJ) > 18 {
		errs.add("cnpj", "must be at most 18 characters")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		errs.add("email", "must be a valid e-mail address")
	}
	return errs.errOrNil()
}

// Apply copies the set fields of p onto c and reports whether anything was set.
func (p ClientPatch) Apply(c *Client) bool {
	changed := false
	if p.CompanyName != nil {
		c.CompanyName = *p.CompanyName
		changed = true
	}
	if p.CNPJ != nil {
		c.CNPJ = *p.CNPJ
		changed = true
	}
	if p.Email != nil {
		c.Email = *p.Email
		changed = true
	}
	return changed
}

package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

const MinPasswordLength = 6

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks a user before its password is hashed.
func (u *User) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(u.Name) == "" {
		errs.add("name", "must not be empty")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		errs.add("email", "must be a valid e-mail address")
	}
	if len(u.Password) < MinPasswordLength {
		errs.add("password", "must be at least 6 characters")
	}
	if u.Role != "" && !u.Role.Valid() {
		errs.add("role", "must be ADMIN or USER")
	}
	return errs.errOrNil()
}

package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/you-humble/shape-shop/internal/validation"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash []byte
	IsAdmin      bool
	CreatedAt    time.Time
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID  int64
	IsAdmin bool
}

type Credentials struct {
	Email    string `form:"email" validate:"required,email,max=254"`
	Password string `form:"password" validate:"required,min=8,max=72"`
}

func (c Credentials) Normalize() Credentials {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return c
}

func (c Credentials) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you-humble/shape-shop/internal/model"
)

type claims struct {
	jwt.RegisteredClaims
	Admin bool `json:"adm,omitempty"`
}

type manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret []byte, ttl time.Duration) *manager {
	return &manager{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs an HS256 token carrying the user id and admin flag.
func (m *manager) Issue(u *model.User) (string, time.Time, error) {
	const op string = "session.manager.Issue"

	now := m.now()
	exp := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Admin: u.IsAdmin,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, exp, nil
}

// Parse verifies token and returns the identity it carries. Every failure
// is reported as model.ErrUnauthorized.
func (m *manager) Parse(token string) (model.Identity, error) {
	const op string = "session.manager.Parse"

	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%s: %w: %w", op, model.ErrUnauthorized, err)
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return model.Identity{}, fmt.Errorf("%s: %w: bad subject", op, model.ErrUnauthorized)
	}

	return model.Identity{UserID: id, IsAdmin: c.Admin}, nil
}

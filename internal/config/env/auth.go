package envconfig

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const minSessionSecretLen = 32

type authEnv struct {
	SessionSecret string        `env:"SESSION_SECRET,required"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	AdminEmails   []string      `env:"ADMIN_EMAILS" envSeparator:","`
}

type auth struct {
	raw authEnv
}

func NewAuthConfig() (*auth, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if len(raw.SessionSecret) < minSessionSecretLen {
		return nil, errors.New("SESSION_SECRET must be at least 32 bytes")
	}

	emails := make([]string, 0, len(raw.AdminEmails))
	for _, e := range raw.AdminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			emails = append(emails, e)
		}
	}
	raw.AdminEmails = emails

	return &auth{raw: raw}, nil
}

func (cfg *auth) SessionSecret() []byte     { return []byte(cfg.raw.SessionSecret) }
func (cfg *auth) SessionTTL() time.Duration { return cfg.raw.SessionTTL }
func (cfg *auth) AdminEmails() []string     { return cfg.raw.AdminEmails }

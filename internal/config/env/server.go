package envconfig

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

type httpServerEnv struct {
	Host string `env:"HTTP_HOST,required"`
	Port int    `env:"HTTP_PORT,required"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT,required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,required"`

	DBReadTimeout  time.Duration `env:"DB_READ_TIMEOUT,required"`
	DBWriteTimeout time.Duration `env:"DB_WRITE_TIMEOUT,required"`

	// Requests per minute per client IP on POST /predict.
	PredictRateLimit int `env:"PREDICT_RATE_LIMIT" envDefault:"60"`
	// Credentialed CORS; empty disables it and "*" is rejected.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type httpServer struct {
	raw httpServerEnv
}

func NewHTTPServerConfig() (*httpServer, error) {
	var raw httpServerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if slices.Contains(raw.CORSAllowedOrigins, "*") {
		return nil, errors.New("CORS_ALLOWED_ORIGINS: wildcard origin is not allowed with credentials")
	}
	return &httpServer{raw: raw}, nil
}

func (cfg *httpServer) Host() string { return cfg.raw.Host }
func (cfg *httpServer) Port() int    { return cfg.raw.Port }
func (cfg *httpServer) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host(), cfg.Port())
}

func (cfg *httpServer) ReadTimeout() time.Duration {
	return cfg.raw.ReadTimeout
}

func (cfg *httpServer) ShutdownTimeout() time.Duration {
	return cfg.raw.ShutdownTimeout
}

func (cfg *httpServer) DBReadTimeout() time.Duration {
	return cfg.raw.DBReadTimeout
}

func (cfg *httpServer) DBWriteTimeout() time.Duration {
	return cfg.raw.DBWriteTimeout
}

func (cfg *httpServer) PredictRateLimit() int        { return cfg.raw.PredictRateLimit }
func (cfg *httpServer) CORSAllowedOrigins() []string { return cfg.raw.CORSAllowedOrigins }

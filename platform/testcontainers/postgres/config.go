package postgres

import (
	"context"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName     string
	Database      string
	Username      string
	Password      string
	MigrationsDir string
	Logger        Logger

	DSN string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: "postgres:17-alpine",
		Database:  "test",
		Username:  "test",
		Password:  "test",
		Logger:    nopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}

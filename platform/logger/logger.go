package logger

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logger struct {
	zapLogger *zap.Logger
}

var (
	mu           sync.RWMutex
	globalLogger = &logger{zapLogger: zap.NewNop()}
)

// Init replaces the global logger. level is one of debug, info, warn, error.
func Init(levelStr string, asJSON bool) error {
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if asJSON {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(stdout())), zap.NewAtomicLevelAt(level))

	mu.Lock()
	globalLogger = &logger{zapLogger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
	mu.Unlock()

	return nil
}

// SetNopLogger silences all output; used by tests.
func SetNopLogger() {
	mu.Lock()
	globalLogger = &logger{zapLogger: zap.NewNop()}
	mu.Unlock()
}

func L() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func With(fields ...Field) *logger { return L().With(fields...) }

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func (l *logger) With(fields ...Field) *logger {
	return &logger{zapLogger: l.zapLogger.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Debug(msg, appendContext(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Info(msg, appendContext(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Warn(msg, appendContext(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Error(msg, appendContext(ctx, fields)...)
}

func (l *logger) Sync() error { return l.zapLogger.Sync() }

func appendContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return append(fields, zap.String("request_id", reqID))
	}
	return fields
}

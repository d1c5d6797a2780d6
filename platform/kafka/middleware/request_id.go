package middleware

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/shape-shop/platform/kafka"
)

// RequestID restores the producing request id into ctx, so handler logs line
// up with the HTTP request that emitted the message.
func RequestID() kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			if id := msg.Headers[kafka.HeaderRequestID]; len(id) > 0 {
				ctx = context.WithValue(ctx, chimw.RequestIDKey, string(id))
			}
			return next(ctx, msg)
		}
	}
}

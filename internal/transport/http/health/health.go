package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/shape-shop/platform/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck answers SERVING while the database responds within timeout.
func HealthCheck(db Pinger, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		status, body := http.StatusOK, "SERVING"
		if err := db.Ping(ctx); err != nil {
			logger.Error(ctx, "health check ping", logger.ErrorF(err))
			status, body = http.StatusServiceUnavailable, "NOT_SERVING"
		}

		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error(ctx, "health check", logger.ErrorF(err))
		}
	}
}

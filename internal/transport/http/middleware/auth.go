package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/internal/transport/http/respond"
	"github.com/you-humble/shape-shop/platform/logger"
)

const SessionCookie = "session"

type TokenParser interface {
	Parse(token string) (model.Identity, error)
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the caller set by Authenticate.
func IdentityFrom(ctx context.Context) (model.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(model.Identity)
	return id, ok && id.UserID > 0
}

// Authenticate resolves the session token, if any, into an identity. It
// never rejects a request; RequireUser and RequireAdmin do.
func Authenticate(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFrom(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := parser.Parse(token)
			if err != nil {
				logger.Debug(r.Context(), "rejected session token", logger.ErrorF(err))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFrom(r.Context()); !ok {
			respond.Error(w, r, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin answers 401 to anonymous callers and 403 to signed in
// non-admins.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok {
			respond.Error(w, r, http.StatusUnauthorized, "authentication required")
			return
		}
		if !id.IsAdmin {
			logger.Warn(r.Context(), "admin route denied", logger.Int64("user_id", id.UserID))
			respond.Error(w, r, http.StatusForbidden, model.ErrForbidden.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tokenFrom(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

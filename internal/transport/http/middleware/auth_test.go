package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/you-humble/shape-shop/internal/model"
)

type parserFunc func(string) (model.Identity, error)

func (f parserFunc) Parse(token string) (model.Identity, error) { return f(token) }

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	parser := parserFunc(func(token string) (model.Identity, error) {
		if token == "good" {
			return model.Identity{UserID: 4}, nil
		}
		return model.Identity{}, model.ErrUnauthorized
	})

	tests := []struct {
		name   string
		header string
		cookie string
		userID int64
		ok     bool
	}{
		{name: "bearer", header: "Bearer good", userID: 4, ok: true},
		{name: "cookie", cookie: "good", userID: 4, ok: true},
		{name: "bad bearer", header: "Bearer bad"},
		{name: "basic scheme ignored", header: "Basic good"},
		{name: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				got   model.Identity
				found bool
			)
			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got, found = IdentityFrom(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}

			Authenticate(parser)(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.ok, found)
			assert.Equal(t, tt.userID, got.UserID)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name   string
		id     *model.Identity
		status int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"user", &model.Identity{UserID: 1}, http.StatusForbidden},
		{"admin", &model.Identity{UserID: 2, IsAdmin: true}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			if tt.id != nil {
				req = req.WithContext(WithIdentity(req.Context(), *tt.id))
			}

			rec := httptest.NewRecorder()
			RequireAdmin(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

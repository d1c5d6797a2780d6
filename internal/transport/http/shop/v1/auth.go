package http

import (
	"net/http"
	"net/url"

	shopv1 "github.com/you-humble/shape-shop/internal/api/shop/v1"
	"github.com/you-humble/shape-shop/internal/converter"
	"github.com/you-humble/shape-shop/internal/transport/http/middleware"
	"github.com/you-humble/shape-shop/internal/transport/http/respond"
)

func (h *handler) Register(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.users.Register(r.Context(), converter.CredentialsToModel(creds))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, converter.UserToAPI(*u))
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s, err := h.users.Login(r.Context(), converter.CredentialsToModel(creds))
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	respond.JSON(w, r, http.StatusOK, converter.SessionToAPI(s))
}

// Logout only drops the cookie; issued tokens stay valid until they expire.
func (h *handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (shopv1.Credentials, error) {
	var creds shopv1.Credentials
	err := decode(w, r, &creds, func(v url.Values) {
		creds = shopv1.Credentials{
			Email:    v.Get("email"),
			Password: v.Get("password"),
		}
	})
	return creds, err
}

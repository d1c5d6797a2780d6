package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/internal/transport/http/respond"
	"github.com/you-humble/shape-shop/platform/logger"
)

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
	}
	respond.Error(w, r, status, msg)
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, publicMessage(err, model.ErrInvalidInput) // 400
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, model.ErrInvalidCredentials.Error() // 401
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, "authentication required" // 401
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, model.ErrForbidden.Error() // 403
	case errors.Is(err, model.ErrItemNotFound):
		return http.StatusNotFound, model.ErrItemNotFound.Error() // 404
	case errors.Is(err, model.ErrShapeNotFound):
		return http.StatusNotFound, model.ErrShapeNotFound.Error() // 404
	case errors.Is(err, model.ErrUserExists):
		return http.StatusConflict, model.ErrUserExists.Error() // 409
	case errors.Is(err, model.ErrClassification):
		return http.StatusInternalServerError, "could not classify measurements" // 500
	default:
		return http.StatusInternalServerError, "internal error" // 500
	}
}

// publicMessage drops the op prefixes in front of sentinel.
func publicMessage(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return sentinel.Error()
}

package respond

import (
	"encoding/json"
	"net/http"

	shopv1 "github.com/you-humble/shape-shop/internal/api/shop/v1"
	"github.com/you-humble/shape-shop/platform/logger"
)

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, shopv1.Error{Code: status, Message: msg})
}

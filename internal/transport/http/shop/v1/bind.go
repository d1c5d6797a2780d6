package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/shape-shop/internal/model"
)

const maxBodyBytes = 1 << 20

// decode fills dst from a JSON body, or calls fromForm with the parsed
// urlencoded form for any other content type.
func decode(w http.ResponseWriter, r *http.Request, dst any, fromForm func(url.Values)) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("%w: malformed json body", model.ErrInvalidInput)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: malformed form body", model.ErrInvalidInput)
	}
	fromForm(r.PostForm)
	return nil
}

func itemIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.ErrItemNotFound
	}
	return id, nil
}

func jsonNumber(v url.Values, key string) json.Number {
	return json.Number(v.Get(key))
}

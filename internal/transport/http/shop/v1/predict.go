package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	shopv1 "github.com/you-humble/shape-shop/internal/api/shop/v1"
	"github.com/you-humble/shape-shop/internal/converter"
	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/internal/transport/http/middleware"
	"github.com/you-humble/shape-shop/internal/transport/http/respond"
)

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, shopv1.Index{
		Shapes:   model.ShapeNames(),
		Features: model.FeatureOrder,
	})
}

func (h *handler) Predict(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var req shopv1.PredictRequest
	err := decode(w, r, &req, func(v url.Values) {
		req = shopv1.PredictRequest{
			DressSize: jsonNumber(v, "Dress_size"),
			Breasts:   jsonNumber(v, "Breasts"),
			Waist:     jsonNumber(v, "Waist"),
			Hips:      jsonNumber(v, "Hips"),
			Shoe:      jsonNumber(v, "Shoe"),
			Height:    jsonNumber(v, "Height"),
			Weight:    jsonNumber(v, "Weight"),
		}
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.predictions.Predict(r.Context(), id.UserID, converter.PredictRequestToInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.PredictResultToResponse(res))
}

func (h *handler) Predictions(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	ps, err := h.predictions.History(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.PredictionsToAPI(ps))
}

func (h *handler) Fashion(w http.ResponseWriter, r *http.Request) {
	shape, err := model.ParseShape(chi.URLParam(r, "shape"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.catalog.ItemsFor(r.Context(), shape)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, shopv1.Recommendations{
		Shape: shape.String(),
		Items: converter.CatalogItemsToAPI(items),
	})
}

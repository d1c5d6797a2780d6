package http

import (
	"net/http"
	"net/url"

	shopv1 "github.com/you-humble/shape-shop/internal/api/shop/v1"
	"github.com/you-humble/shape-shop/internal/converter"
	"github.com/you-humble/shape-shop/internal/transport/http/respond"
)

func (h *handler) AdminItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Items(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, shopv1.CatalogItemList{Items: converter.CatalogItemsToAPI(items)})
}

func (h *handler) AdminItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.catalog.Item(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.CatalogItemToAPI(*item))
}

func (h *handler) AdminCreateItem(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCatalogItem(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.catalog.CreateItem(r.Context(), converter.CatalogItemRequestToInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, converter.CatalogItemToAPI(*item))
}

func (h *handler) AdminUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req, err := decodeCatalogItem(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.catalog.UpdateItem(r.Context(), id, converter.CatalogItemRequestToInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.CatalogItemToAPI(*item))
}

func (h *handler) AdminDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.catalog.DeleteItem(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Users(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.UsersToAPI(users))
}

func (h *handler) AdminPredictions(w http.ResponseWriter, r *http.Request) {
	ps, err := h.predictions.All(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.PredictionsToAPI(ps))
}

func (h *handler) AdminPurchases(w http.ResponseWriter, r *http.Request) {
	ps, err := h.purchases.All(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.PurchasesToAPI(ps))
}

func decodeCatalogItem(w http.ResponseWriter, r *http.Request) (shopv1.CatalogItemRequest, error) {
	var req shopv1.CatalogItemRequest
	err := decode(w, r, &req, func(v url.Values) {
		req = shopv1.CatalogItemRequest{
			Shape: v.Get("shape"),
			Name:  v.Get("name"),
			Image: v.Get("image"),
			Price: v.Get("price"),
		}
	})
	return req, err
}

package http

import (
	"net/http"
	"net/url"

	shopv1 "github.com/you-humble/shape-shop/internal/api/shop/v1"
	"github.com/you-humble/shape-shop/internal/converter"
	"github.com/you-humble/shape-shop/internal/transport/http/middleware"
	"github.com/you-humble/shape-shop/internal/transport/http/respond"
)

func (h *handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	itemID, err := itemIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	line, err := h.cart.Add(r.Context(), id.UserID, itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.CartLineToAPI(*line))
}

func (h *handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	itemID, err := itemIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.cart.Remove(r.Context(), id.UserID, itemID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	cart, err := h.cart.View(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.CartToAPI(cart))
}

// Checkout sends an empty cart back to /cart.
func (h *handler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	cart, err := h.cart.Checkout(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if cart.Empty() {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.CartToAPI(cart))
}

func (h *handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var req shopv1.PaymentRequest
	err := decode(w, r, &req, func(v url.Values) {
		req = shopv1.PaymentRequest{
			CardName:   v.Get("card_name"),
			CardNumber: v.Get("card_number"),
			Expiry:     v.Get("expiry"),
			CVV:        v.Get("cvv"),
		}
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	receipt, err := h.cart.ProcessPayment(r.Context(), id.UserID, converter.PaymentRequestToForm(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !receipt.Cleared {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.ReceiptToAPI(receipt))
}

func (h *handler) Purchases(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	ps, err := h.purchases.History(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.PurchasesToAPI(ps))
}

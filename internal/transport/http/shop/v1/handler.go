package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/internal/transport/http/middleware"
)

type PredictionService interface {
	Predict(ctx context.Context, userID int64, in model.MeasurementsInput) (*model.PredictResult, error)
	History(ctx context.Context, userID int64) ([]model.Prediction, error)
	All(ctx context.Context) ([]model.Prediction, error)
}

type CatalogService interface {
	ItemsFor(ctx context.Context, shape model.Shape) ([]model.CatalogItem, error)
	Items(ctx context.Context) ([]model.CatalogItem, error)
	Item(ctx context.Context, id int64) (*model.CatalogItem, error)
	CreateItem(ctx context.Context, in model.CatalogItemInput) (*model.CatalogItem, error)
	UpdateItem(ctx context.Context, id int64, in model.CatalogItemInput) (*model.CatalogItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

type CartService interface {
	Add(ctx context.Context, userID, itemID int64) (*model.CartLine, error)
	Remove(ctx context.Context, userID, itemID int64) error
	View(ctx context.Context, userID int64) (*model.Cart, error)
	Checkout(ctx context.Context, userID int64) (*model.Cart, error)
	ProcessPayment(ctx context.Context, userID int64, form model.PaymentForm) (*model.Receipt, error)
}

type UserService interface {
	Register(ctx context.Context, creds model.Credentials) (*model.User, error)
	Login(ctx context.Context, creds model.Credentials) (*model.Session, error)
	Users(ctx context.Context) ([]model.User, error)
}

type PurchaseService interface {
	History(ctx context.Context, userID int64) ([]model.Purchase, error)
	All(ctx context.Context) ([]model.Purchase, error)
}

type handler struct {
	predictions PredictionService
	catalog     CatalogService
	cart        CartService
	users       UserService
	purchases   PurchaseService
}

func NewShopHandler(
	predictions PredictionService,
	catalog CatalogService,
	cart CartService,
	users UserService,
	purchases PurchaseService,
) *handler {
	return &handler{
		predictions: predictions,
		catalog:     catalog,
		cart:        cart,
		users:       users,
		purchases:   purchases,
	}
}

// Routes builds the shop API. authenticate resolves the session of every
// request; predictLimit guards POST /predict.
func (h *handler) Routes(
	authenticate func(http.Handler) http.Handler,
	predictLimit func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(authenticate)

	r.Get("/", h.Index)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/fashion/{shape}", h.Fashion)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.With(predictLimit).Post("/predict", h.Predict)
		r.Get("/predictions", h.Predictions)
		r.Get("/purchases", h.Purchases)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.ViewCart)
			r.Post("/add/{item_id}", h.AddToCart)
			r.Post("/remove/{item_id}", h.RemoveFromCart)
			r.Get("/checkout", h.Checkout)
			r.Post("/process_payment", h.ProcessPayment)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		r.Get("/fashion", h.AdminItems)
		r.Post("/fashion", h.AdminCreateItem)
		r.Get("/fashion/{item_id}", h.AdminItem)
		r.Put("/fashion/{item_id}", h.AdminUpdateItem)
		r.Post("/fashion/{item_id}", h.AdminUpdateItem)
		r.Delete("/fashion/{item_id}", h.AdminDeleteItem)
		r.Post("/fashion/{item_id}/delete", h.AdminDeleteItem)
		r.Get("/users", h.AdminUsers)
		r.Get("/predictions", h.AdminPredictions)
		r.Get("/purchases", h.AdminPurchases)
	})

	return r
}

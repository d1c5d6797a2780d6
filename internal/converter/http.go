package converter

import (
	"github.com/samber/lo"

	shopv1 "github.com/you-humble/shape-shop/internal/api/shop/v1"
	"github.com/you-humble/shape-shop/internal/model"
)

func PredictRequestToInput(req shopv1.PredictRequest) model.MeasurementsInput {
	return model.MeasurementsInput{
		DressSize: req.DressSize.String(),
		Breasts:   req.Breasts.String(),
		Waist:     req.Waist.String(),
		Hips:      req.Hips.String(),
		Shoe:      req.Shoe.String(),
		Height:    req.Height.String(),
		Weight:    req.Weight.String(),
	}
}

func PredictResultToResponse(res *model.PredictResult) shopv1.PredictResponse {
	return shopv1.PredictResponse{
		Shape:           res.Shape.String(),
		Slug:            res.Shape.Slug(),
		PredictionID:    res.PredictionID,
		Saved:           res.Saved,
		Recommendations: "/fashion/" + res.Shape.Slug(),
	}
}

func PredictionToAPI(p model.Prediction) shopv1.Prediction {
	m := p.Measurements
	return shopv1.Prediction{
		ID:     p.ID,
		UserID: p.UserID,
		Shape:  p.Shape.String(),
		Measurements: shopv1.Measurements{
			DressSize: m.DressSize,
			Breasts:   m.Breasts,
			Waist:     m.Waist,
			Hips:      m.Hips,
			Shoe:      m.Shoe,
			Height:    m.Height,
			Weight:    m.Weight,
		},
		CreatedAt: p.CreatedAt,
	}
}

func PredictionsToAPI(ps []model.Prediction) shopv1.PredictionList {
	return shopv1.PredictionList{
		Predictions: lo.Map(ps, func(p model.Prediction, _ int) shopv1.Prediction {
			return PredictionToAPI(p)
		}),
	}
}

func CatalogItemToAPI(it model.CatalogItem) shopv1.CatalogItem {
	return shopv1.CatalogItem{
		ID:    it.ID,
		Shape: it.Shape.String(),
		Name:  it.Name,
		Image: it.Image,
		Price: it.Price.StringFixed(2),
	}
}

func CatalogItemsToAPI(items []model.CatalogItem) []shopv1.CatalogItem {
	return lo.Map(items, func(it model.CatalogItem, _ int) shopv1.CatalogItem {
		return CatalogItemToAPI(it)
	})
}

func CatalogItemRequestToInput(req shopv1.CatalogItemRequest) model.CatalogItemInput {
	return model.CatalogItemInput{
		Shape: req.Shape,
		Name:  req.Name,
		Image: req.Image,
		Price: req.Price,
	}
}

func CartLineToAPI(l model.CartLine) shopv1.CartLine {
	return shopv1.CartLine{
		Item:     CatalogItemToAPI(l.Item),
		Quantity: l.Quantity,
		Subtotal: l.Subtotal().StringFixed(2),
	}
}

func CartToAPI(c *model.Cart) shopv1.Cart {
	return shopv1.Cart{
		Lines: lo.Map(c.Lines, func(l model.CartLine, _ int) shopv1.CartLine {
			return CartLineToAPI(l)
		}),
		Units: c.Units(),
		Total: c.Total.StringFixed(2),
	}
}

func PaymentRequestToForm(req shopv1.PaymentRequest) model.PaymentForm {
	return model.PaymentForm{
		CardName:   req.CardName,
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
	}
}

func ReceiptToAPI(r *model.Receipt) shopv1.Receipt {
	return shopv1.Receipt{
		TransactionID: r.TransactionID.String(),
		Lines: lo.Map(r.Lines, func(l model.CartLine, _ int) shopv1.CartLine {
			return CartLineToAPI(l)
		}),
		Total: r.Total.StringFixed(2),
	}
}

func PurchaseToAPI(p model.Purchase) shopv1.Purchase {
	return shopv1.Purchase{
		EventID:       p.EventID.String(),
		UserID:        p.UserID,
		TransactionID: p.TransactionID.String(),
		Total:         p.Total.StringFixed(2),
		LineCount:     p.LineCount,
		Units:         p.Units,
		RecordedAt:    p.RecordedAt,
	}
}

func PurchasesToAPI(ps []model.Purchase) shopv1.PurchaseList {
	return shopv1.PurchaseList{Purchases: lo.Map(ps, func(p model.Purchase, _ int) shopv1.Purchase {
		return PurchaseToAPI(p)
	})}
}

func CredentialsToModel(req shopv1.Credentials) model.Credentials {
	return model.Credentials{Email: req.Email, Password: req.Password}
}

func UserToAPI(u model.User) shopv1.User {
	return shopv1.User{
		ID:        u.ID,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func UsersToAPI(users []model.User) shopv1.UserList {
	return shopv1.UserList{
		Users: lo.Map(users, func(u model.User, _ int) shopv1.User {
			return UserToAPI(u)
		}),
	}
}

func SessionToAPI(s *model.Session) shopv1.Session {
	return shopv1.Session{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      UserToAPI(*s.User),
	}
}

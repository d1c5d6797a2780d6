package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you-humble/shape-shop/internal/metrics"
	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/platform/logger"
)

type CartRepository interface {
	AddOne(ctx context.Context, userID, itemID int64) (int64, error)
	Lines(ctx context.Context, userID int64) ([]model.CartLine, error)
	Remove(ctx context.Context, userID, itemID int64) error
	Clear(ctx context.Context, userID int64) ([]model.CartLine, error)
}

type ItemReader interface {
	ItemByID(ctx context.Context, id int64) (*model.CatalogItem, error)
}

type CheckoutSender interface {
	SendCheckoutCompleted(ctx context.Context, event model.CheckoutCompleted) error
}

type service struct {
	repo           CartRepository
	items          ItemReader
	sender         CheckoutSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewCartService(
	repository CartRepository,
	items ItemReader,
	sender CheckoutSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		items:          items,
		sender:         sender,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Add puts one unit of itemID into the user's cart and returns the line
// with its new quantity.
func (svc *service) Add(ctx context.Context, userID, itemID int64) (*model.CartLine, error) {
	const op string = "cart.service.Add"
	log := logger.With(
		logger.Int64("user_id", userID),
		logger.Int64("item_id", itemID),
	)

	if userID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}
	if itemID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrItemNotFound)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	item, err := svc.items.ItemByID(rdbCtx, itemID)
	if err != nil {
		log.Warn(ctx, "item lookup", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	qty, err := svc.repo.AddOne(wdbCtx, userID, itemID)
	if err != nil {
		log.Error(ctx, "repository add to cart", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.CartAdds.Inc()
	log.Info(ctx, "item added to cart", logger.Int64("quantity", qty))

	return &model.CartLine{UserID: userID, Item: *item, Quantity: qty}, nil
}

func (svc *service) Remove(ctx context.Context, userID, itemID int64) error {
	const op string = "cart.service.Remove"
	log := logger.With(
		logger.Int64("user_id", userID),
		logger.Int64("item_id", itemID),
	)

	if userID <= 0 {
		return fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Remove(ctx, userID, itemID); err != nil {
		log.Warn(ctx, "repository remove from cart", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// View returns the user's cart with line subtotals and the grand total.
func (svc *service) View(ctx context.Context, userID int64) (*model.Cart, error) {
	const op string = "cart.service.View"

	if userID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	lines, err := svc.repo.Lines(ctx, userID)
	if err != nil {
		logger.Error(ctx, "repository cart lines",
			logger.Int64("user_id", userID),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return model.NewCart(userID, lines), nil
}

// Checkout is the pre-payment summary. It never changes the cart.
func (svc *service) Checkout(ctx context.Context, userID int64) (*model.Cart, error) {
	const op string = "cart.service.Checkout"

	cart, err := svc.View(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cart, nil
}

// ProcessPayment checks the card form and clears the cart in one step.
// An already empty cart yields a receipt with Cleared=false and no event,
// whatever the form holds.
func (svc *service) ProcessPayment(
	ctx context.Context,
	userID int64,
	form model.PaymentForm,
) (*model.Receipt, error) {
	const op string = "cart.service.ProcessPayment"
	log := logger.With(logger.Int64("user_id", userID))

	if userID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	current, err := svc.repo.Lines(rdbCtx, userID)
	if err != nil {
		log.Error(ctx, "repository cart lines", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(current) == 0 {
		log.Info(ctx, "checkout of empty cart")
		return &model.Receipt{Total: decimal.Zero}, nil
	}

	if err := form.Validate(); err != nil {
		log.Warn(ctx, "invalid payment form", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	lines, err := svc.repo.Clear(wdbCtx, userID)
	if err != nil {
		log.Error(ctx, "repository clear cart", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cart := model.NewCart(userID, lines)
	if cart.Empty() {
		log.Info(ctx, "checkout of empty cart")
		return &model.Receipt{Total: cart.Total}, nil
	}

	receipt := &model.Receipt{
		TransactionID: uuid.New(),
		Lines:         cart.Lines,
		Total:         cart.Total,
		Cleared:       true,
	}

	metrics.Checkouts.Inc()
	log = log.With(
		logger.String("transaction_id", receipt.TransactionID.String()),
		logger.String("total", receipt.Total.StringFixed(2)),
	)
	log.Info(ctx, "cart checked out")

	event := model.CheckoutCompleted{
		EventID:       uuid.New(),
		UserID:        userID,
		TransactionID: receipt.TransactionID,
		Total:         receipt.Total,
		LineCount:     len(receipt.Lines),
		Units:         cart.Units(),
	}
	if err := svc.sender.SendCheckoutCompleted(ctx, event); err != nil {
		log.Error(ctx, "send checkout completed", logger.ErrorF(err))
	}

	return receipt, nil
}

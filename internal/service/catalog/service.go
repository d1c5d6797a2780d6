package service

import (
	"context"
	"fmt"
	"time"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/platform/logger"
)

type CatalogRepository interface {
	Create(ctx context.Context, item *model.CatalogItem) (int64, error)
	Update(ctx context.Context, item *model.CatalogItem) error
	Delete(ctx context.Context, id int64) error
	ItemByID(ctx context.Context, id int64) (*model.CatalogItem, error)
	List(ctx context.Context, filter model.CatalogFilter) ([]model.CatalogItem, error)
}

type service struct {
	repo           CatalogRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewCatalogService(
	repository CatalogRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// ItemsFor returns every catalog item tagged with shape. An empty result is
// not an error.
func (svc *service) ItemsFor(ctx context.Context, shape model.Shape) ([]model.CatalogItem, error) {
	const op string = "catalog.service.ItemsFor"
	log := logger.With(logger.String("shape", shape.String()))

	if !shape.Valid() {
		log.Warn(ctx, "unknown shape")
		return nil, fmt.Errorf("%s: %w", op, model.ErrShapeNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	items, err := svc.repo.List(ctx, model.CatalogFilter{Shapes: []model.Shape{shape}})
	if err != nil {
		log.Error(ctx, "repository list items", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if items == nil {
		items = []model.CatalogItem{}
	}
	return items, nil
}

func (svc *service) Items(ctx context.Context) ([]model.CatalogItem, error) {
	const op string = "catalog.service.Items"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	items, err := svc.repo.List(ctx, model.CatalogFilter{})
	if err != nil {
		logger.Error(ctx, "repository list items", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (svc *service) Item(ctx context.Context, id int64) (*model.CatalogItem, error) {
	const op string = "catalog.service.Item"
	log := logger.With(logger.Int64("item_id", id))

	if id <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrItemNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	item, err := svc.repo.ItemByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository item by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (svc *service) CreateItem(ctx context.Context, in model.CatalogItemInput) (*model.CatalogItem, error) {
	const op string = "catalog.service.CreateItem"

	item, err := in.Parse()
	if err != nil {
		logger.Warn(ctx, "invalid catalog item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if _, err := svc.repo.Create(ctx, &item); err != nil {
		logger.Error(ctx, "repository create item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "catalog item created",
		logger.Int64("item_id", item.ID),
		logger.String("shape", item.Shape.String()),
	)
	return &item, nil
}

func (svc *service) UpdateItem(ctx context.Context, id int64, in model.CatalogItemInput) (*model.CatalogItem, error) {
	const op string = "catalog.service.UpdateItem"
	log := logger.With(logger.Int64("item_id", id))

	if id <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrItemNotFound)
	}

	item, err := in.Parse()
	if err != nil {
		log.Warn(ctx, "invalid catalog item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	item.ID = id

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Update(ctx, &item); err != nil {
		log.Error(ctx, "repository update item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &item, nil
}

func (svc *service) DeleteItem(ctx context.Context, id int64) error {
	const op string = "catalog.service.DeleteItem"
	log := logger.With(logger.Int64("item_id", id))

	if id <= 0 {
		return fmt.Errorf("%s: %w", op, model.ErrItemNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Delete(ctx, id); err != nil {
		log.Error(ctx, "repository delete item", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "catalog item deleted")
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/shape-shop/internal/model"
)

var itemColumns = []string{"id", "body_shape", "name", "image", "price::text", "created_at", "updated_at"}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewCatalogRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, item *model.CatalogItem) (int64, error) {
	const op = "repository.catalog.Create"

	q := r.sb.
		Insert("catalog_items").
		Columns("body_shape", "name", "image", "price").
		Values(item.Shape.String(), item.Name, item.Image, item.Price.String()).
		Suffix("RETURNING id, created_at, updated_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return item.ID, nil
}

func (r *repository) Update(ctx context.Context, item *model.CatalogItem) error {
	const op = "repository.catalog.Update"

	if item.ID == 0 {
		return fmt.Errorf("%s: empty item id", op)
	}

	q := r.sb.
		Update("catalog_items").
		SetMap(sq.Eq{
			"body_shape": item.Shape.String(),
			"name":       item.Name,
			"image":      item.Image,
			"price":      item.Price.String(),
			"updated_at": time.Now(),
		}).
		Where(sq.Eq{"id": item.ID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	const op = "repository.catalog.Delete"

	sqlStr, args, err := r.sb.
		Delete("catalog_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}

	return nil
}

func (r *repository) ItemByID(ctx context.Context, id int64) (*model.CatalogItem, error) {
	const op = "repository.catalog.ItemByID"

	sqlStr, args, err := r.sb.
		Select(itemColumns...).
		From("catalog_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &item, nil
}

func (r *repository) List(ctx context.Context, filter model.CatalogFilter) ([]model.CatalogItem, error) {
	const op = "repository.catalog.List"

	q := r.sb.
		Select(itemColumns...).
		From("catalog_items").
		OrderBy("id")
	if !filter.Empty() {
		q = q.Where(sq.Eq{"body_shape": lo.Map(filter.Shapes, func(s model.Shape, _ int) string {
			return s.String()
		})})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func scanItem(row pgx.CollectableRow) (model.CatalogItem, error) {
	var (
		item         model.CatalogItem
		shape, price string
	)
	if err := row.Scan(&item.ID, &shape, &item.Name, &item.Image, &price, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return model.CatalogItem{}, err
	}

	return FinishItem(item, shape, price)
}

// FinishItem converts the text columns shared by catalog and cart queries.
func FinishItem(item model.CatalogItem, shape, price string) (model.CatalogItem, error) {
	var err error
	if item.Shape, err = model.ParseShape(shape); err != nil {
		return model.CatalogItem{}, fmt.Errorf("catalog item %d: %w", item.ID, err)
	}
	if item.Price, err = decimal.NewFromString(price); err != nil {
		return model.CatalogItem{}, fmt.Errorf("catalog item %d price: %w", item.ID, err)
	}
	return item, nil
}

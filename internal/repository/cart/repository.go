package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/shape-shop/internal/model"
	catalog "github.com/you-humble/shape-shop/internal/repository/catalog"
	"github.com/you-humble/shape-shop/internal/repository/pgerr"
)

// clearCartSQL removes every line of a user and returns them with their
// catalog data in one statement.
const clearCartSQL = `
WITH deleted AS (
    DELETE FROM cart_lines WHERE user_id = $1
    RETURNING user_id, item_id, quantity, added_at
)
SELECT d.user_id, d.quantity,
       c.id, c.body_shape, c.name, c.image, c.price::text, c.created_at, c.updated_at
FROM deleted d
JOIN catalog_items c ON c.id = d.item_id
ORDER BY d.added_at, d.item_id`

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewCartRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// AddOne inserts a line with quantity 1 or increments an existing one.
// The upsert is a single statement so concurrent adds never lose a unit.
func (r *repository) AddOne(ctx context.Context, userID, itemID int64) (int64, error) {
	const op = "repository.cart.AddOne"

	q := r.sb.
		Insert("cart_lines").
		Columns("user_id", "item_id", "quantity").
		Values(userID, itemID, 1).
		Suffix("ON CONFLICT (user_id, item_id) DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity RETURNING quantity")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var quantity int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&quantity); err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return 0, model.ErrItemNotFound
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return quantity, nil
}

func (r *repository) Lines(ctx context.Context, userID int64) ([]model.CartLine, error) {
	const op = "repository.cart.Lines"

	q := r.sb.
		Select(
			"l.user_id", "l.quantity",
			"c.id", "c.body_shape", "c.name", "c.image", "c.price::text", "c.created_at", "c.updated_at",
		).
		From("cart_lines l").
		Join("catalog_items c ON c.id = l.item_id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("l.added_at", "l.item_id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := pgx.CollectRows(rows, scanLine)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *repository) Remove(ctx context.Context, userID, itemID int64) error {
	const op = "repository.cart.Remove"

	sqlStr, args, err := r.sb.
		Delete("cart_lines").
		Where(sq.Eq{"user_id": userID, "item_id": itemID}).
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

// Clear deletes all lines of the user and returns what was deleted.
func (r *repository) Clear(ctx context.Context, userID int64) ([]model.CartLine, error) {
	const op = "repository.cart.Clear"

	rows, err := r.pool.Query(ctx, clearCartSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := pgx.CollectRows(rows, scanLine)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func scanLine(row pgx.CollectableRow) (model.CartLine, error) {
	var (
		line         model.CartLine
		shape, price string
	)
	err := row.Scan(
		&line.UserID,
		&line.Quantity,
		&line.Item.ID,
		&shape,
		&line.Item.Name,
		&line.Item.Image,
		&price,
		&line.Item.CreatedAt,
		&line.Item.UpdatedAt,
	)
	if err != nil {
		return model.CartLine{}, err
	}

	if line.Item, err = catalog.FinishItem(line.Item, shape, price); err != nil {
		return model.CartLine{}, err
	}

	return line, nil
}

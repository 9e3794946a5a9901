package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avelinos/tasktrack-api/internal"
)

// categoryColumns selects every category column plus the derived task counts
// over non-deleted tasks.
const categoryColumns = `c.id, c.name, c.description, c.color, c.is_active, c.created_at,
COUNT(t.id) FILTER (WHERE NOT t.is_deleted),
COUNT(t.id) FILTER (WHERE NOT t.is_deleted AND t.is_completed)`

const categoryFrom = `FROM categories c LEFT JOIN tasks t ON t.category_id = c.id`

const categoryGroup = `GROUP BY c.id`

// Category represents the repository used for persisting and retrieving
// Category records.
type Category struct {
	pool *pgxpool.Pool
}

// NewCategory instantiates the Category repository.
func NewCategory(pool *pgxpool.Pool) *Category {
	return &Category{
		pool: pool,
	}
}

// ListActive returns every active category ordered by name, enriched with
// task counts.
func (c *Category) ListActive(ctx context.Context) ([]internal.Category, error) {
	defer newOTELSpan(ctx, "Category.ListActive").End()

	rows, err := c.pool.Query(ctx,
		categorySelect(`WHERE c.is_active`)+` ORDER BY c.name ASC`)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select categories")
	}
	defer rows.Close()

	var res []internal.Category

	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "scan category")
		}

		res = append(res, category)
	}

	if err := rows.Err(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "category rows")
	}

	return res, nil
}

// Find returns a single active category enriched with task counts.
func (c *Category) Find(ctx context.Context, id int64) (internal.Category, error) {
	defer newOTELSpan(ctx, "Category.Find").End()

	return c.findBy(ctx, categoryFindQuery(true), id)
}

// findAny returns a single category regardless of active state. Post-write
// reads go through here so that creating or deactivating a category still
// returns the written row.
func (c *Category) findAny(ctx context.Context, id int64) (internal.Category, error) {
	return c.findBy(ctx, categoryFindQuery(false), id)
}

func (c *Category) findBy(ctx context.Context, query string, id int64) (internal.Category, error) {
	row := c.pool.QueryRow(ctx, query, id)

	category, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return internal.Category{}, internal.NewErrorf(internal.ErrorCodeNotFound, "category %d not found", id)
	}

	if err != nil {
		return internal.Category{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select category")
	}

	return category, nil
}

// Lookup returns the name and color of a category regardless of active
// state, empty values when the category no longer exists. Backs the cache
// decorators' enrichment of cached task records.
func (c *Category) Lookup(ctx context.Context, id int64) (string, string, error) {
	defer newOTELSpan(ctx, "Category.Lookup").End()

	var name, color string

	err := c.pool.QueryRow(ctx,
		`SELECT name, COALESCE(color, '') FROM categories WHERE id = $1`,
		id).Scan(&name, &color)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", nil
	}

	if err != nil {
		return "", "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select category name")
	}

	return name, color, nil
}

// ExistsActive reports whether an active category with the id is present,
// used to validate task references before a write.
func (c *Category) ExistsActive(ctx context.Context, id int64) (bool, error) {
	defer newOTELSpan(ctx, "Category.ExistsActive").End()

	var exists bool
	if err := c.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 AND is_active)`,
		id).Scan(&exists); err != nil {
		return false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select exists")
	}

	return exists, nil
}

// NameTaken reports whether a category with the exact name already exists,
// optionally excluding one id (for updates).
func (c *Category) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	defer newOTELSpan(ctx, "Category.NameTaken").End()

	var taken bool
	if err := c.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1 AND id <> $2)`,
		name, excludeID).Scan(&taken); err != nil {
		return false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select name taken")
	}

	return taken, nil
}

// Create inserts a new category record.
func (c *Category) Create(ctx context.Context, params internal.CategoryParams, createdAt time.Time) (internal.Category, error) {
	defer newOTELSpan(ctx, "Category.Create").End()

	var id int64

	err := c.pool.QueryRow(ctx,
		`INSERT INTO categories (name, description, color, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		params.Name,
		params.Description,
		params.Color,
		params.IsActive,
		createdAt,
	).Scan(&id)
	if isUniqueViolation(err) {
		return internal.Category{}, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "category name %q already exists", params.Name)
	}

	if err != nil {
		return internal.Category{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "insert category")
	}

	return c.findAny(ctx, id)
}

// Update overwrites the mutable fields of a category.
func (c *Category) Update(ctx context.Context, id int64, params internal.CategoryParams) (internal.Category, error) {
	defer newOTELSpan(ctx, "Category.Update").End()

	tag, err := c.pool.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3, color = $4, is_active = $5
		WHERE id = $1`,
		id,
		params.Name,
		params.Description,
		params.Color,
		params.IsActive,
	)
	if isUniqueViolation(err) {
		return internal.Category{}, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "category name %q already exists", params.Name)
	}

	if err != nil {
		return internal.Category{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "update category")
	}

	if tag.RowsAffected() == 0 {
		return internal.Category{}, internal.NewErrorf(internal.ErrorCodeNotFound, "category %d not found", id)
	}

	return c.findAny(ctx, id)
}

// Delete removes a category. The tasks foreign key nullifies references, so
// no task is ever cascade-deleted.
func (c *Category) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Category.Delete").End()

	tag, err := c.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "delete category")
	}

	if tag.RowsAffected() == 0 {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "category %d not found", id)
	}

	return nil
}

func categorySelect(where string) string {
	return `SELECT ` + categoryColumns + ` ` + categoryFrom + ` ` + where + ` ` + categoryGroup
}

// categoryFindQuery builds the single-row lookup, with or without the
// active-only predicate.
func categoryFindQuery(activeOnly bool) string {
	where := `WHERE c.id = $1`
	if activeOnly {
		where += ` AND c.is_active`
	}

	return categorySelect(where)
}

func scanCategory(row rowScanner) (internal.Category, error) {
	var category internal.Category

	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.Color,
		&category.IsActive,
		&category.CreatedAt,
		&category.ActiveTaskCount,
		&category.CompletedTaskCount,
	)

	return category, err
}

package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/avelinos/tasktrack-api/internal"
)

// CategoryRepository defines the datastore handling persisting Category
// records.
type CategoryRepository interface {
	ListActive(ctx context.Context) ([]internal.Category, error)
	Find(ctx context.Context, id int64) (internal.Category, error)
	ExistsActive(ctx context.Context, id int64) (bool, error)
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, params internal.CategoryParams, createdAt time.Time) (internal.Category, error)
	Update(ctx context.Context, id int64, params internal.CategoryParams) (internal.Category, error)
	Delete(ctx context.Context, id int64) error
}

// Category defines the application service in charge of interacting with
// Categories.
type Category struct {
	repo CategoryRepository
	now  func() time.Time
}

// NewCategory instantiates the Category service.
func NewCategory(repo CategoryRepository) *Category {
	return &Category{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// ListActive returns every active category ordered by name, enriched with
// derived task counts.
func (c *Category) ListActive(ctx context.Context) ([]internal.Category, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Category.ListActive")
	defer span.End()

	res, err := c.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo list active: %w", err)
	}

	return res, nil
}

// Category gets an existing active Category from the datastore.
func (c *Category) Category(ctx context.Context, id int64) (internal.Category, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Category.Category")
	defer span.End()

	category, err := c.repo.Find(ctx, id)
	if err != nil {
		return internal.Category{}, fmt.Errorf("repo find: %w", err)
	}

	return category, nil
}

// Create normalizes, validates and stores a new category. The name must not
// already be taken.
func (c *Category) Create(ctx context.Context, params internal.CategoryParams) (internal.Category, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Category.Create")
	defer span.End()

	params.Normalize()

	if err := params.Validate(); err != nil {
		return internal.Category{}, err
	}

	if err := c.checkName(ctx, params.Name, 0); err != nil {
		return internal.Category{}, err
	}

	category, err := c.repo.Create(ctx, params, c.now())
	if err != nil {
		return internal.Category{}, fmt.Errorf("repo create: %w", err)
	}

	return category, nil
}

// Update overwrites the mutable fields of an existing category.
func (c *Category) Update(ctx context.Context, id int64, params internal.CategoryParams) (internal.Category, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Category.Update")
	defer span.End()

	params.Normalize()

	if err := params.Validate(); err != nil {
		return internal.Category{}, err
	}

	if err := c.checkName(ctx, params.Name, id); err != nil {
		return internal.Category{}, err
	}

	category, err := c.repo.Update(ctx, id, params)
	if err != nil {
		return internal.Category{}, fmt.Errorf("repo update: %w", err)
	}

	return category, nil
}

// Delete removes a category. Referencing tasks lose the reference, they are
// never cascade-deleted.
func (c *Category) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Category.Delete")
	defer span.End()

	if err := c.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	return nil
}

func (c *Category) checkName(ctx context.Context, name string, excludeID int64) error {
	taken, err := c.repo.NameTaken(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("repo name taken: %w", err)
	}

	if taken {
		return internal.NewErrorf(internal.ErrorCodeInvalidArgument, "category name %q already exists", name)
	}

	return nil
}

package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avelinos/tasktrack-api/internal"
)

// CategoryService orchestrates category operations for the handlers.
type CategoryService interface {
	ListActive(ctx context.Context) ([]internal.Category, error)
	Category(ctx context.Context, id int64) (internal.Category, error)
	Create(ctx context.Context, params internal.CategoryParams) (internal.Category, error)
	Update(ctx context.Context, id int64, params internal.CategoryParams) (internal.Category, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryHandler maps category routes onto the service.
type CategoryHandler struct {
	svc CategoryService
}

// NewCategoryHandler instantiates the handler.
func NewCategoryHandler(svc CategoryService) *CategoryHandler {
	return &CategoryHandler{
		svc: svc,
	}
}

// Register connects the handlers to the router.
func (c *CategoryHandler) Register(r chi.Router) {
	r.Get("/categories", c.list)
	r.Post("/categories", c.create)
	r.Get("/categories/{id:[0-9]+}", c.read)
	r.Put("/categories/{id:[0-9]+}", c.update)
	r.Delete("/categories/{id:[0-9]+}", c.delete)
}

// Category is the enriched category record returned to clients.
type Category struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Description          *string   `json:"description,omitempty"`
	Color                *string   `json:"color,omitempty"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
	ActiveTaskCount      int64     `json:"activeTaskCount"`
	CompletedTaskCount   int64     `json:"completedTaskCount"`
	CompletionPercentage float64   `json:"completionPercentage"`
}

// NewCategory maps a domain category to its response shape.
func NewCategory(category internal.Category) Category {
	return Category{
		ID:                   category.ID,
		Name:                 category.Name,
		Description:          category.Description,
		Color:                category.Color,
		IsActive:             category.IsActive,
		CreatedAt:            category.CreatedAt,
		ActiveTaskCount:      category.ActiveTaskCount,
		CompletedTaskCount:   category.CompletedTaskCount,
		CompletionPercentage: category.CompletionPercentage(),
	}
}

// CategoryRequest defines the request used for creating and updating
// categories.
type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"isActive"`
}

func (req CategoryRequest) params() internal.CategoryParams {
	params := internal.CategoryParams{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    true,
	}

	if req.IsActive != nil {
		params.IsActive = *req.IsActive
	}

	return params
}

func (c *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := c.svc.ListActive(r.Context())
	if err != nil {
		renderErrorResponse(r.Context(), w, "list failed", err)
		return
	}

	res := make([]Category, len(categories))
	for i, category := range categories {
		res[i] = NewCategory(category)
	}

	renderResponse(w, res, http.StatusOK)
}

func (c *CategoryHandler) read(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	category, err := c.svc.Category(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "find failed", err)
		return
	}

	renderResponse(w, NewCategory(category), http.StatusOK)
}

func (c *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	category, err := c.svc.Create(r.Context(), req.params())
	if err != nil {
		renderErrorResponse(r.Context(), w, "create failed", err)
		return
	}

	renderResponse(w, NewCategory(category), http.StatusCreated)
}

func (c *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	category, err := c.svc.Update(r.Context(), id, req.params())
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, NewCategory(category), http.StatusOK)
}

func (c *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	if err := c.svc.Delete(r.Context(), id); err != nil {
		renderErrorResponse(r.Context(), w, "delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

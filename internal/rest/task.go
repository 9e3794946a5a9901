package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avelinos/tasktrack-api/internal"
)

//go:generate counterfeiter -o resttesting/task_service.gen.go . TaskService

// TaskService orchestrates task operations for the handlers.
type TaskService interface {
	List(ctx context.Context, includeCompleted bool) ([]internal.Task, error)
	Task(ctx context.Context, id int64) (internal.Task, error)
	Create(ctx context.Context, params internal.TaskParams) (internal.Task, error)
	Update(ctx context.Context, id int64, params internal.TaskParams) (internal.Task, error)
	ToggleCompletion(ctx context.Context, id int64) (internal.Task, error)
	Delete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) (internal.Task, error)
	Search(ctx context.Context, criteria internal.SearchCriteria) (internal.SearchResults, error)
	By(ctx context.Context, term string, from, size int) ([]internal.Task, int64, error)
	BulkUpdate(ctx context.Context, ids []int64, patch internal.TaskPatch) (int64, error)
	BulkDelete(ctx context.Context, ids []int64) (int64, error)
	Statistics(ctx context.Context) ([]internal.StatisticsRow, error)
}

// TaskHandler maps task routes onto the service.
type TaskHandler struct {
	svc TaskService
	now func() time.Time
}

// NewTaskHandler instantiates the handler.
func NewTaskHandler(svc TaskService) *TaskHandler {
	return &TaskHandler{
		svc: svc,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Register connects the handlers to the router.
func (t *TaskHandler) Register(r chi.Router) {
	r.Get("/tasks", t.list)
	r.Post("/tasks", t.create)
	r.Get("/tasks/statistics", t.statistics)
	r.Get("/tasks/quick-search", t.quickSearch)
	r.Post("/tasks/search", t.search)
	r.Patch("/tasks/bulk", t.bulkUpdate)
	r.Delete("/tasks/bulk", t.bulkDelete)
	r.Get("/tasks/{id:[0-9]+}", t.read)
	r.Put("/tasks/{id:[0-9]+}", t.update)
	r.Delete("/tasks/{id:[0-9]+}", t.delete)
	r.Patch("/tasks/{id:[0-9]+}/toggle", t.toggle)
	r.Post("/tasks/{id:[0-9]+}/restore", t.restore)
}

// Task is the enriched task record returned to clients. Derived fields are
// computed at render time, never stored.
type Task struct {
	ID                   int64      `json:"id"`
	Title                string     `json:"title"`
	Description          *string    `json:"description,omitempty"`
	IsCompleted          bool       `json:"isCompleted"`
	Priority             int        `json:"priority"`
	PriorityText         string     `json:"priorityText"`
	CategoryID           *int64     `json:"categoryId,omitempty"`
	CategoryName         string     `json:"categoryName"`
	CategoryColor        *string    `json:"categoryColor,omitempty"`
	DueDate              *time.Time `json:"dueDate,omitempty"`
	EstimatedHours       *float64   `json:"estimatedHours,omitempty"`
	NotificationsEnabled bool       `json:"notificationsEnabled"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	IsOverdue            bool       `json:"isOverdue"`
	IsDueSoon            bool       `json:"isDueSoon"`
	DueStatus            string     `json:"dueStatus"`
}

// NewTask maps a domain task to its response shape, deriving the computed
// fields against now.
func NewTask(task internal.Task, now time.Time) Task {
	res := Task{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		IsCompleted:          task.IsCompleted,
		Priority:             int(task.Priority),
		PriorityText:         task.Priority.Text(),
		CategoryID:           task.CategoryID,
		CategoryName:         task.ResolvedCategoryName(),
		DueDate:              task.DueDate,
		EstimatedHours:       task.EstimatedHours,
		NotificationsEnabled: task.NotificationsEnabled,
		CreatedAt:            task.CreatedAt,
		UpdatedAt:            task.UpdatedAt,
		IsOverdue:            task.IsOverdue(now),
		IsDueSoon:            task.IsDueSoon(now),
		DueStatus:            string(task.DueStatus(now)),
	}

	if task.CategoryID != nil && task.CategoryColor != "" {
		color := task.CategoryColor
		res.CategoryColor = &color
	}

	return res
}

func newTasks(tasks []internal.Task, now time.Time) []Task {
	res := make([]Task, len(tasks))
	for i, task := range tasks {
		res[i] = NewTask(task, now)
	}

	return res
}

// TaskRequest defines the request used for creating and updating tasks.
type TaskRequest struct {
	Title                string     `json:"title"`
	Description          *string    `json:"description"`
	Priority             int        `json:"priority"`
	CategoryID           *int64     `json:"categoryId"`
	DueDate              *time.Time `json:"dueDate"`
	EstimatedHours       *float64   `json:"estimatedHours"`
	NotificationsEnabled *bool      `json:"notificationsEnabled"`
}

func (req TaskRequest) params() internal.TaskParams {
	params := internal.TaskParams{
		Title:                req.Title,
		Description:          req.Description,
		Priority:             internal.Priority(req.Priority),
		CategoryID:           req.CategoryID,
		DueDate:              req.DueDate,
		EstimatedHours:       req.EstimatedHours,
		NotificationsEnabled: true,
	}

	if req.NotificationsEnabled != nil {
		params.NotificationsEnabled = *req.NotificationsEnabled
	}

	return params
}

// SearchTasksRequest defines the request used for searching tasks.
type SearchTasksRequest struct {
	SearchTerm    *string    `json:"searchTerm"`
	IsCompleted   *bool      `json:"isCompleted"`
	Priority      *int       `json:"priority"`
	CategoryID    *int64     `json:"categoryId"`
	CreatedAfter  *time.Time `json:"createdAfter"`
	CreatedBefore *time.Time `json:"createdBefore"`
	DueAfter      *time.Time `json:"dueAfter"`
	DueBefore     *time.Time `json:"dueBefore"`
	IsOverdue     *bool      `json:"isOverdue"`
	HasEstimate   *bool      `json:"hasEstimate"`
	Page          int        `json:"page"`
	PageSize      int        `json:"pageSize"`
}

// SearchTasksResponse defines the paged response returned back after
// searching tasks.
type SearchTasksResponse struct {
	Tasks           []Task `json:"tasks"`
	TotalCount      int64  `json:"totalCount"`
	Page            int    `json:"page"`
	PageSize        int    `json:"pageSize"`
	TotalPages      int    `json:"totalPages"`
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
}

// BulkUpdateRequest defines the request used for updating tasks in bulk.
// Unset patch fields leave the current values unchanged.
type BulkUpdateRequest struct {
	IDs            []int64    `json:"ids"`
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	IsCompleted    *bool      `json:"isCompleted"`
	Priority       *int       `json:"priority"`
	CategoryID     *int64     `json:"categoryId"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *float64   `json:"estimatedHours"`
}

// BulkDeleteRequest defines the request used for soft-deleting tasks in
// bulk.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// BulkResponse reports how many of the requested ids were found and
// processed.
type BulkResponse struct {
	Count int64 `json:"count"`
}

// StatisticsRow is one aggregate row of the statistics report.
type StatisticsRow struct {
	Label                string  `json:"label"`
	TotalTasks           int64   `json:"totalTasks"`
	CompletedTasks       int64   `json:"completedTasks"`
	PendingTasks         int64   `json:"pendingTasks"`
	HighPriorityPending  int64   `json:"highPriorityPending"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

func (t *TaskHandler) list(w http.ResponseWriter, r *http.Request) {
	includeCompleted, _ := strconv.ParseBool(r.URL.Query().Get("includeCompleted"))

	tasks, err := t.svc.List(r.Context(), includeCompleted)
	if err != nil {
		renderErrorResponse(r.Context(), w, "list failed", err)
		return
	}

	renderResponse(w, newTasks(tasks, t.now()), http.StatusOK)
}

func (t *TaskHandler) read(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	task, err := t.svc.Task(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "find failed", err)
		return
	}

	renderResponse(w, NewTask(task, t.now()), http.StatusOK)
}

func (t *TaskHandler) create(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	task, err := t.svc.Create(r.Context(), req.params())
	if err != nil {
		renderErrorResponse(r.Context(), w, "create failed", err)
		return
	}

	renderResponse(w, NewTask(task, t.now()), http.StatusCreated)
}

func (t *TaskHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	task, err := t.svc.Update(r.Context(), id, req.params())
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, NewTask(task, t.now()), http.StatusOK)
}

func (t *TaskHandler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	task, err := t.svc.ToggleCompletion(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "toggle failed", err)
		return
	}

	renderResponse(w, NewTask(task, t.now()), http.StatusOK)
}

func (t *TaskHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	if err := t.svc.Delete(r.Context(), id); err != nil {
		renderErrorResponse(r.Context(), w, "delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (t *TaskHandler) restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	task, err := t.svc.Restore(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "restore failed", err)
		return
	}

	renderResponse(w, NewTask(task, t.now()), http.StatusOK)
}

func (t *TaskHandler) search(w http.ResponseWriter, r *http.Request) {
	var req SearchTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	criteria := internal.SearchCriteria{
		SearchTerm:    req.SearchTerm,
		IsCompleted:   req.IsCompleted,
		CategoryID:    req.CategoryID,
		CreatedAfter:  req.CreatedAfter,
		CreatedBefore: req.CreatedBefore,
		DueAfter:      req.DueAfter,
		DueBefore:     req.DueBefore,
		IsOverdue:     req.IsOverdue,
		HasEstimate:   req.HasEstimate,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}

	if req.Priority != nil {
		priority := internal.Priority(*req.Priority)
		criteria.Priority = &priority
	}

	res, err := t.svc.Search(r.Context(), criteria)
	if err != nil {
		renderErrorResponse(r.Context(), w, "search failed", err)
		return
	}

	renderResponse(w, SearchTasksResponse{
		Tasks:           newTasks(res.Tasks, t.now()),
		TotalCount:      res.TotalCount,
		Page:            res.Page,
		PageSize:        res.PageSize,
		TotalPages:      res.TotalPages,
		HasNextPage:     res.HasNextPage,
		HasPreviousPage: res.HasPreviousPage,
	}, http.StatusOK)
}

func (t *TaskHandler) quickSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, _ := strconv.Atoi(q.Get("from"))
	size, _ := strconv.Atoi(q.Get("size"))

	tasks, total, err := t.svc.By(r.Context(), q.Get("q"), from, size)
	if err != nil {
		renderErrorResponse(r.Context(), w, "search failed", err)
		return
	}

	renderResponse(w, struct {
		Tasks []Task `json:"tasks"`
		Total int64  `json:"total"`
	}{
		Tasks: newTasks(tasks, t.now()),
		Total: total,
	}, http.StatusOK)
}

func (t *TaskHandler) bulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req BulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	patch := internal.TaskPatch{
		Title:          req.Title,
		Description:    req.Description,
		IsCompleted:    req.IsCompleted,
		CategoryID:     req.CategoryID,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
	}

	if req.Priority != nil {
		priority := internal.Priority(*req.Priority)
		patch.Priority = &priority
	}

	count, err := t.svc.BulkUpdate(r.Context(), req.IDs, patch)
	if err != nil {
		renderErrorResponse(r.Context(), w, "bulk update failed", err)
		return
	}

	renderResponse(w, BulkResponse{Count: count}, http.StatusOK)
}

func (t *TaskHandler) bulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	count, err := t.svc.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		renderErrorResponse(r.Context(), w, "bulk delete failed", err)
		return
	}

	renderResponse(w, BulkResponse{Count: count}, http.StatusOK)
}

func (t *TaskHandler) statistics(w http.ResponseWriter, r *http.Request) {
	rows, err := t.svc.Statistics(r.Context())
	if err != nil {
		renderErrorResponse(r.Context(), w, "statistics failed", err)
		return
	}

	res := make([]StatisticsRow, len(rows))
	for i, row := range rows {
		res[i] = StatisticsRow{
			Label:                row.Label,
			TotalTasks:           row.TotalTasks,
			CompletedTasks:       row.CompletedTasks,
			PendingTasks:         row.PendingTasks,
			HighPriorityPending:  row.HighPriorityPending,
			CompletionPercentage: row.CompletionPercentage(),
		}
	}

	renderResponse(w, res, http.StatusOK)
}

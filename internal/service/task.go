// Package service implements the application services coordinating the
// authoritative store, the search index and the message broker.
package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/avelinos/tasktrack-api/internal"
)

const otelName = "github.com/avelinos/tasktrack-api/internal/service"

// DefaultRetentionDays is the soft-delete retention window applied when the
// cleanup caller does not set one.
const DefaultRetentionDays = 30

// TaskRepository defines the datastore handling persisting Task records.
type TaskRepository interface {
	Create(ctx context.Context, params internal.TaskParams, now time.Time) (internal.Task, error)
	Find(ctx context.Context, id int64) (internal.Task, error)
	FindDeleted(ctx context.Context, id int64) (internal.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]internal.Task, error)
	Update(ctx context.Context, id int64, params internal.TaskParams, now time.Time) (internal.Task, error)
	ToggleCompletion(ctx context.Context, id int64, now time.Time) (internal.Task, error)
	SoftDelete(ctx context.Context, id int64, now time.Time) error
	Restore(ctx context.Context, id int64, now time.Time) (internal.Task, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Search(ctx context.Context, criteria internal.SearchCriteria, now time.Time) ([]internal.Task, int64, error)
	BulkUpdate(ctx context.Context, ids []int64, patch internal.TaskPatch, now time.Time) (int64, error)
	BulkSoftDelete(ctx context.Context, ids []int64, now time.Time) (int64, error)
	Statistics(ctx context.Context) ([]internal.StatisticsRow, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// TaskSearchRepository defines the datastore handling free-text relevance
// search of Task records.
type TaskSearchRepository interface {
	Search(ctx context.Context, term string, from, size int) ([]internal.Task, int64, error)
}

// TaskMessageBrokerRepository defines the broker publishing Task lifecycle
// events.
type TaskMessageBrokerRepository interface {
	Created(ctx context.Context, task internal.Task) error
	Updated(ctx context.Context, task internal.Task) error
	Deleted(ctx context.Context, id int64) error
	Restored(ctx context.Context, task internal.Task) error
}

// CategoryResolver verifies category references before a task write.
type CategoryResolver interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}

// Task defines the application service in charge of interacting with Tasks.
type Task struct {
	logger     *zap.Logger
	repo       TaskRepository
	search     TaskSearchRepository
	msgBroker  TaskMessageBrokerRepository
	categories CategoryResolver
	now        func() time.Time
}

// NewTask instantiates the Task service.
func NewTask(logger *zap.Logger, repo TaskRepository, search TaskSearchRepository, msgBroker TaskMessageBrokerRepository, categories CategoryResolver) *Task {
	return &Task{
		logger:     logger,
		repo:       repo,
		search:     search,
		msgBroker:  msgBroker,
		categories: categories,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// List returns every non-deleted task, optionally excluding completed ones.
func (t *Task) List(ctx context.Context, includeCompleted bool) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.List")
	defer span.End()

	res, err := t.repo.List(ctx, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("repo list: %w", err)
	}

	return res, nil
}

// Task gets an existing Task from the datastore.
func (t *Task) Task(ctx context.Context, id int64) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Task")
	defer span.End()

	task, err := t.repo.Find(ctx, id)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo find: %w", err)
	}

	return task, nil
}

// Create normalizes, validates and stores a new record, then publishes the
// created event. Publish failures never fail the request.
func (t *Task) Create(ctx context.Context, params internal.TaskParams) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Create")
	defer span.End()

	params.Normalize()

	if params.Priority == 0 {
		params.Priority = internal.PriorityLow
	}

	if err := params.Validate(); err != nil {
		return internal.Task{}, err
	}

	if err := t.resolveCategory(ctx, params.CategoryID); err != nil {
		return internal.Task{}, err
	}

	task, err := t.repo.Create(ctx, params, t.now())
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo create: %w", err)
	}

	t.publish(ctx, func() error { return t.msgBroker.Created(ctx, task) })

	return task, nil
}

// Update overwrites the mutable fields of an existing Task. Completion
// state and bookkeeping fields are untouched.
func (t *Task) Update(ctx context.Context, id int64, params internal.TaskParams) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Update")
	defer span.End()

	params.Normalize()

	if err := params.Validate(); err != nil {
		return internal.Task{}, err
	}

	if err := t.resolveCategory(ctx, params.CategoryID); err != nil {
		return internal.Task{}, err
	}

	task, err := t.repo.Update(ctx, id, params, t.now())
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo update: %w", err)
	}

	t.publish(ctx, func() error { return t.msgBroker.Updated(ctx, task) })

	return task, nil
}

// ToggleCompletion flips the completion flag of an existing Task. The only
// state transition in the system, no validation beyond existence.
func (t *Task) ToggleCompletion(ctx context.Context, id int64) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.ToggleCompletion")
	defer span.End()

	task, err := t.repo.ToggleCompletion(ctx, id, t.now())
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo toggle: %w", err)
	}

	t.publish(ctx, func() error { return t.msgBroker.Updated(ctx, task) })

	return task, nil
}

// Delete soft-deletes an existing Task, keeping it restorable until the
// retention cleanup runs.
func (t *Task) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Delete")
	defer span.End()

	if err := t.repo.SoftDelete(ctx, id, t.now()); err != nil {
		return fmt.Errorf("repo soft delete: %w", err)
	}

	t.publish(ctx, func() error { return t.msgBroker.Deleted(ctx, id) })

	return nil
}

// Restore brings a soft-deleted Task back.
func (t *Task) Restore(ctx context.Context, id int64) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Restore")
	defer span.End()

	task, err := t.repo.Restore(ctx, id, t.now())
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo restore: %w", err)
	}

	t.publish(ctx, func() error { return t.msgBroker.Restored(ctx, task) })

	return task, nil
}

// CleanupDeleted permanently removes tasks soft-deleted longer than daysOld
// days, defaulting to the retention window. Returns the count removed.
func (t *Task) CleanupDeleted(ctx context.Context, daysOld int) (int64, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.CleanupDeleted")
	defer span.End()

	if daysOld <= 0 {
		daysOld = DefaultRetentionDays
	}

	cutoff := t.now().AddDate(0, 0, -daysOld)

	count, err := t.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("repo delete older than: %w", err)
	}

	t.logger.Info("cleanup removed tasks", zap.Int64("count", count), zap.Time("cutoff", cutoff))

	return count, nil
}

// Search filters the non-deleted tasks with AND semantics and returns one
// page with pagination metadata. An out-of-range page yields an empty list
// with an accurate total.
func (t *Task) Search(ctx context.Context, criteria internal.SearchCriteria) (internal.SearchResults, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Search")
	defer span.End()

	criteria.Normalize()

	tasks, total, err := t.repo.Search(ctx, criteria, t.now())
	if err != nil {
		return internal.SearchResults{}, fmt.Errorf("repo search: %w", err)
	}

	return internal.NewSearchResults(tasks, total, criteria), nil
}

// By returns tasks matching the term by relevance from the search index.
// The index is eventually consistent with the store.
func (t *Task) By(ctx context.Context, term string, from, size int) ([]internal.Task, int64, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.By")
	defer span.End()

	if size < 1 || size > internal.MaxPageSize {
		size = internal.DefaultPageSize
	}

	if from < 0 {
		from = 0
	}

	tasks, total, err := t.search.Search(ctx, term, from, size)
	if err != nil {
		return nil, 0, fmt.Errorf("search: %w", err)
	}

	return tasks, total, nil
}

// BulkUpdate applies the set patch fields to every existing task in ids,
// silently skipping unknown ids. Returns the count actually updated.
func (t *Task) BulkUpdate(ctx context.Context, ids []int64, patch internal.TaskPatch) (int64, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.BulkUpdate")
	defer span.End()

	if len(ids) == 0 || patch.IsZero() {
		return 0, nil
	}

	patch.Normalize()

	if err := patch.Validate(); err != nil {
		return 0, err
	}

	if err := t.resolveCategory(ctx, patch.CategoryID); err != nil {
		return 0, err
	}

	count, err := t.repo.BulkUpdate(ctx, ids, patch, t.now())
	if err != nil {
		return 0, fmt.Errorf("repo bulk update: %w", err)
	}

	// Reindex the touched records, skipping ids the update skipped.
	for _, id := range ids {
		task, err := t.repo.Find(ctx, id)
		if err != nil {
			continue
		}

		t.publish(ctx, func() error { return t.msgBroker.Updated(ctx, task) })
	}

	return count, nil
}

// BulkDelete soft-deletes every existing task in ids, silently skipping
// unknown ids. Returns the count actually deleted.
func (t *Task) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.BulkDelete")
	defer span.End()

	if len(ids) == 0 {
		return 0, nil
	}

	count, err := t.repo.BulkSoftDelete(ctx, ids, t.now())
	if err != nil {
		return 0, fmt.Errorf("repo bulk delete: %w", err)
	}

	for _, id := range ids {
		id := id
		t.publish(ctx, func() error { return t.msgBroker.Deleted(ctx, id) })
	}

	return count, nil
}

// Statistics aggregates the non-deleted tasks: a "Total" row first, then one
// row per category with at least one task, "Uncategorized" included.
func (t *Task) Statistics(ctx context.Context) ([]internal.StatisticsRow, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Statistics")
	defer span.End()

	rows, err := t.repo.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo statistics: %w", err)
	}

	total := internal.StatisticsRow{Label: internal.TotalLabel}
	for _, row := range rows {
		total.TotalTasks += row.TotalTasks
		total.CompletedTasks += row.CompletedTasks
		total.PendingTasks += row.PendingTasks
		total.HighPriorityPending += row.HighPriorityPending
	}

	return append([]internal.StatisticsRow{total}, rows...), nil
}

// Exists reports whether a non-deleted task with the id is present.
func (t *Task) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Exists")
	defer span.End()

	exists, err := t.repo.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("repo exists: %w", err)
	}

	return exists, nil
}

// resolveCategory fails with an invalid-reference error when the id does not
// name an active category. A nil id is fine, tasks may be uncategorized.
func (t *Task) resolveCategory(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}

	exists, err := t.categories.ExistsActive(ctx, *id)
	if err != nil {
		return fmt.Errorf("categories exists: %w", err)
	}

	if !exists {
		return internal.NewErrorf(internal.ErrorCodeInvalidReference, "category %d does not exist or is inactive", *id)
	}

	return nil
}

func (t *Task) publish(ctx context.Context, fn func() error) {
	if err := fn(); err != nil {
		t.logger.Warn("event publish failed", zap.Error(err))
	}
}

package memcached

import (
	"context"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"go.uber.org/zap"

	"github.com/avelinos/tasktrack-api/internal"
)

// TaskStore defines the task datastore being decorated.
type TaskStore interface {
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

// CategoryLookup resolves the live name and color of the category a cached
// record references.
type CategoryLookup interface {
	Lookup(ctx context.Context, id int64) (name string, color string, err error)
}

// Task decorates a TaskStore with cache-aside caching of read-by-id
// lookups. The category enrichment fields reflect live category state, so
// they are never cached: records are stored stripped and resolved again on
// every cached read.
type Task struct {
	client     *memcache.Client
	orig       TaskStore
	categories CategoryLookup
	expiration time.Duration
	logger     *zap.Logger
}

// NewTask instantiates the decorated Task store.
func NewTask(client *memcache.Client, orig TaskStore, categories CategoryLookup, logger *zap.Logger) *Task {
	return &Task{
		client:     client,
		orig:       orig,
		categories: categories,
		expiration: 15 * time.Minute,
		logger:     logger,
	}
}

func taskKey(id int64) string {
	return fmt.Sprintf("task:%d", id)
}

// cache stores the record with the enrichment fields stripped.
func (t *Task) cache(ctx context.Context, task internal.Task) {
	task = stripEnrichment(task)

	setValue(ctx, t.client, taskKey(task.ID), &task, t.expiration)
}

// resolve fills the enrichment fields from the live category state. A
// category renamed, recolored or removed after the record was cached is
// reflected on the next read.
func (t *Task) resolve(ctx context.Context, task *internal.Task) error {
	if task.CategoryID == nil {
		return nil
	}

	name, color, err := t.categories.Lookup(ctx, *task.CategoryID)
	if err != nil {
		return err
	}

	task.CategoryName = name
	task.CategoryColor = color

	return nil
}

func stripEnrichment(task internal.Task) internal.Task {
	task.CategoryName = ""
	task.CategoryColor = ""

	return task
}

// Create stores the new record and primes the cache.
func (t *Task) Create(ctx context.Context, params internal.TaskParams, now time.Time) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	task, err := t.orig.Create(ctx, params, now)
	if err != nil {
		return internal.Task{}, err
	}

	t.cache(ctx, task)

	return task, nil
}

// Find returns the cached record when present, otherwise reads through and
// caches. Cached records carry no enrichment, it is resolved per read.
func (t *Task) Find(ctx context.Context, id int64) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	var res internal.Task

	if err := getValue(ctx, t.client, taskKey(id), &res); err == nil {
		if err := t.resolve(ctx, &res); err == nil {
			return res, nil
		}
	}

	t.logger.Debug("Find: cache miss", zap.Int64("id", id))

	res, err := t.orig.Find(ctx, id)
	if err != nil {
		return internal.Task{}, err
	}

	t.cache(ctx, res)

	return res, nil
}

// FindDeleted bypasses the cache, deleted tasks are never cached.
func (t *Task) FindDeleted(ctx context.Context, id int64) (internal.Task, error) {
	return t.orig.FindDeleted(ctx, id)
}

// List bypasses the cache.
func (t *Task) List(ctx context.Context, includeCompleted bool) ([]internal.Task, error) {
	return t.orig.List(ctx, includeCompleted)
}

// Update refreshes the cached record after the write.
func (t *Task) Update(ctx context.Context, id int64, params internal.TaskParams, now time.Time) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Update").End()

	task, err := t.orig.Update(ctx, id, params, now)
	if err != nil {
		return internal.Task{}, err
	}

	t.cache(ctx, task)

	return task, nil
}

// ToggleCompletion refreshes the cached record after the write.
func (t *Task) ToggleCompletion(ctx context.Context, id int64, now time.Time) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.ToggleCompletion").End()

	task, err := t.orig.ToggleCompletion(ctx, id, now)
	if err != nil {
		return internal.Task{}, err
	}

	t.cache(ctx, task)

	return task, nil
}

// SoftDelete evicts the record.
func (t *Task) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	defer newOTELSpan(ctx, "Task.SoftDelete").End()

	if err := t.orig.SoftDelete(ctx, id, now); err != nil {
		return err
	}

	deleteValue(ctx, t.client, taskKey(id))

	return nil
}

// Restore primes the cache with the restored record.
func (t *Task) Restore(ctx context.Context, id int64, now time.Time) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Restore").End()

	task, err := t.orig.Restore(ctx, id, now)
	if err != nil {
		return internal.Task{}, err
	}

	t.cache(ctx, task)

	return task, nil
}

// DeleteOlderThan passes through, the removed records have been evicted (or
// never cached) since soft deletion.
func (t *Task) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return t.orig.DeleteOlderThan(ctx, cutoff)
}

// Search bypasses the cache.
func (t *Task) Search(ctx context.Context, criteria internal.SearchCriteria, now time.Time) ([]internal.Task, int64, error) {
	return t.orig.Search(ctx, criteria, now)
}

// BulkUpdate evicts every touched record.
func (t *Task) BulkUpdate(ctx context.Context, ids []int64, patch internal.TaskPatch, now time.Time) (int64, error) {
	defer newOTELSpan(ctx, "Task.BulkUpdate").End()

	count, err := t.orig.BulkUpdate(ctx, ids, patch, now)
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		deleteValue(ctx, t.client, taskKey(id))
	}

	return count, nil
}

// BulkSoftDelete evicts every touched record.
func (t *Task) BulkSoftDelete(ctx context.Context, ids []int64, now time.Time) (int64, error) {
	defer newOTELSpan(ctx, "Task.BulkSoftDelete").End()

	count, err := t.orig.BulkSoftDelete(ctx, ids, now)
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		deleteValue(ctx, t.client, taskKey(id))
	}

	return count, nil
}

// Statistics bypasses the cache.
func (t *Task) Statistics(ctx context.Context) ([]internal.StatisticsRow, error) {
	return t.orig.Statistics(ctx)
}

// Exists bypasses the cache.
func (t *Task) Exists(ctx context.Context, id int64) (bool, error) {
	return t.orig.Exists(ctx, id)
}

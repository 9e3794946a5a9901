// Package redis implements the same cache-aside decorator as package
// memcached for deployments running Redis instead.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	rv8 "github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/avelinos/tasktrack-api/internal"
	"github.com/avelinos/tasktrack-api/internal/memcached"
)

const otelName = "github.com/avelinos/tasktrack-api/internal/redis"

// Task decorates a task store with read-by-id caching in Redis. Cached
// records carry no category enrichment, it reflects live category state and
// is resolved again on every cached read.
type Task struct {
	client     *rv8.Client
	orig       memcached.TaskStore
	categories memcached.CategoryLookup
	expiration time.Duration
	logger     *zap.Logger
}

// NewTask instantiates the decorated Task store.
func NewTask(client *rv8.Client, orig memcached.TaskStore, categories memcached.CategoryLookup, logger *zap.Logger) *Task {
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

func (t *Task) get(ctx context.Context, id int64, target *internal.Task) error {
	defer newOTELSpan(ctx, "get").End()

	val, err := t.client.Get(ctx, taskKey(id)).Bytes()
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Get")
	}

	if err := json.Unmarshal(val, target); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.Unmarshal")
	}

	return nil
}

func (t *Task) set(ctx context.Context, task internal.Task) {
	defer newOTELSpan(ctx, "set").End()

	task.CategoryName = ""
	task.CategoryColor = ""

	val, err := json.Marshal(task)
	if err != nil {
		return
	}

	_ = t.client.Set(ctx, taskKey(task.ID), val, t.expiration).Err()
}

// resolve fills the enrichment fields of a cached record from the live
// category state.
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

func (t *Task) evict(ctx context.Context, ids ...int64) {
	defer newOTELSpan(ctx, "evict").End()

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = taskKey(id)
	}

	_ = t.client.Del(ctx, keys...).Err()
}

// Create stores the new record and primes the cache.
func (t *Task) Create(ctx context.Context, params internal.TaskParams, now time.Time) (internal.Task, error) {
	task, err := t.orig.Create(ctx, params, now)
	if err != nil {
		return internal.Task{}, err
	}

	t.set(ctx, task)

	return task, nil
}

// Find returns the cached record when present, otherwise reads through and
// caches.
func (t *Task) Find(ctx context.Context, id int64) (internal.Task, error) {
	var res internal.Task

	if err := t.get(ctx, id, &res); err == nil {
		if err := t.resolve(ctx, &res); err == nil {
			return res, nil
		}
	}

	t.logger.Debug("Find: cache miss", zap.Int64("id", id))

	res, err := t.orig.Find(ctx, id)
	if err != nil {
		return internal.Task{}, err
	}

	t.set(ctx, res)

	return res, nil
}

// FindDeleted bypasses the cache.
func (t *Task) FindDeleted(ctx context.Context, id int64) (internal.Task, error) {
	return t.orig.FindDeleted(ctx, id)
}

// List bypasses the cache.
func (t *Task) List(ctx context.Context, includeCompleted bool) ([]internal.Task, error) {
	return t.orig.List(ctx, includeCompleted)
}

// Update refreshes the cached record after the write.
func (t *Task) Update(ctx context.Context, id int64, params internal.TaskParams, now time.Time) (internal.Task, error) {
	task, err := t.orig.Update(ctx, id, params, now)
	if err != nil {
		return internal.Task{}, err
	}

	t.set(ctx, task)

	return task, nil
}

// ToggleCompletion refreshes the cached record after the write.
func (t *Task) ToggleCompletion(ctx context.Context, id int64, now time.Time) (internal.Task, error) {
	task, err := t.orig.ToggleCompletion(ctx, id, now)
	if err != nil {
		return internal.Task{}, err
	}

	t.set(ctx, task)

	return task, nil
}

// SoftDelete evicts the record.
func (t *Task) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	if err := t.orig.SoftDelete(ctx, id, now); err != nil {
		return err
	}

	t.evict(ctx, id)

	return nil
}

// Restore primes the cache with the restored record.
func (t *Task) Restore(ctx context.Context, id int64, now time.Time) (internal.Task, error) {
	task, err := t.orig.Restore(ctx, id, now)
	if err != nil {
		return internal.Task{}, err
	}

	t.set(ctx, task)

	return task, nil
}

// DeleteOlderThan passes through.
func (t *Task) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return t.orig.DeleteOlderThan(ctx, cutoff)
}

// Search bypasses the cache.
func (t *Task) Search(ctx context.Context, criteria internal.SearchCriteria, now time.Time) ([]internal.Task, int64, error) {
	return t.orig.Search(ctx, criteria, now)
}

// BulkUpdate evicts every touched record.
func (t *Task) BulkUpdate(ctx context.Context, ids []int64, patch internal.TaskPatch, now time.Time) (int64, error) {
	count, err := t.orig.BulkUpdate(ctx, ids, patch, now)
	if err != nil {
		return 0, err
	}

	t.evict(ctx, ids...)

	return count, nil
}

// BulkSoftDelete evicts every touched record.
func (t *Task) BulkSoftDelete(ctx context.Context, ids []int64, now time.Time) (int64, error) {
	count, err := t.orig.BulkSoftDelete(ctx, ids, now)
	if err != nil {
		return 0, err
	}

	t.evict(ctx, ids...)

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

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemRedis)

	return span
}

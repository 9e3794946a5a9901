package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avelinos/tasktrack-api/internal"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type taskRepoFake struct {
	createFn          func(ctx context.Context, params internal.TaskParams, now time.Time) (internal.Task, error)
	findFn            func(ctx context.Context, id int64) (internal.Task, error)
	findDeletedFn     func(ctx context.Context, id int64) (internal.Task, error)
	listFn            func(ctx context.Context, includeCompleted bool) ([]internal.Task, error)
	updateFn          func(ctx context.Context, id int64, params internal.TaskParams, now time.Time) (internal.Task, error)
	toggleFn          func(ctx context.Context, id int64, now time.Time) (internal.Task, error)
	softDeleteFn      func(ctx context.Context, id int64, now time.Time) error
	restoreFn         func(ctx context.Context, id int64, now time.Time) (internal.Task, error)
	deleteOlderThanFn func(ctx context.Context, cutoff time.Time) (int64, error)
	searchFn          func(ctx context.Context, criteria internal.SearchCriteria, now time.Time) ([]internal.Task, int64, error)
	bulkUpdateFn      func(ctx context.Context, ids []int64, patch internal.TaskPatch, now time.Time) (int64, error)
	bulkSoftDeleteFn  func(ctx context.Context, ids []int64, now time.Time) (int64, error)
	statisticsFn      func(ctx context.Context) ([]internal.StatisticsRow, error)
	existsFn          func(ctx context.Context, id int64) (bool, error)
}

func (f *taskRepoFake) Create(ctx context.Context, params internal.TaskParams, now time.Time) (internal.Task, error) {
	return f.createFn(ctx, params, now)
}

func (f *taskRepoFake) Find(ctx context.Context, id int64) (internal.Task, error) {
	return f.findFn(ctx, id)
}

func (f *taskRepoFake) FindDeleted(ctx context.Context, id int64) (internal.Task, error) {
	return f.findDeletedFn(ctx, id)
}

func (f *taskRepoFake) List(ctx context.Context, includeCompleted bool) ([]internal.Task, error) {
	return f.listFn(ctx, includeCompleted)
}

func (f *taskRepoFake) Update(ctx context.Context, id int64, params internal.TaskParams, now time.Time) (internal.Task, error) {
	return f.updateFn(ctx, id, params, now)
}

func (f *taskRepoFake) ToggleCompletion(ctx context.Context, id int64, now time.Time) (internal.Task, error) {
	return f.toggleFn(ctx, id, now)
}

func (f *taskRepoFake) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	return f.softDeleteFn(ctx, id, now)
}

func (f *taskRepoFake) Restore(ctx context.Context, id int64, now time.Time) (internal.Task, error) {
	return f.restoreFn(ctx, id, now)
}

func (f *taskRepoFake) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return f.deleteOlderThanFn(ctx, cutoff)
}

func (f *taskRepoFake) Search(ctx context.Context, criteria internal.SearchCriteria, now time.Time) ([]internal.Task, int64, error) {
	return f.searchFn(ctx, criteria, now)
}

func (f *taskRepoFake) BulkUpdate(ctx context.Context, ids []int64, patch internal.TaskPatch, now time.Time) (int64, error) {
	return f.bulkUpdateFn(ctx, ids, patch, now)
}

func (f *taskRepoFake) BulkSoftDelete(ctx context.Context, ids []int64, now time.Time) (int64, error) {
	return f.bulkSoftDeleteFn(ctx, ids, now)
}

func (f *taskRepoFake) Statistics(ctx context.Context) ([]internal.StatisticsRow, error) {
	return f.statisticsFn(ctx)
}

func (f *taskRepoFake) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existsFn(ctx, id)
}

type searchRepoFake struct {
	searchFn func(ctx context.Context, term string, from, size int) ([]internal.Task, int64, error)
}

func (f *searchRepoFake) Search(ctx context.Context, term string, from, size int) ([]internal.Task, int64, error) {
	return f.searchFn(ctx, term, from, size)
}

type msgBrokerFake struct {
	created  []internal.Task
	updated  []internal.Task
	deleted  []int64
	restored []internal.Task
	err      error
}

func (f *msgBrokerFake) Created(_ context.Context, task internal.Task) error {
	f.created = append(f.created, task)
	return f.err
}

func (f *msgBrokerFake) Updated(_ context.Context, task internal.Task) error {
	f.updated = append(f.updated, task)
	return f.err
}

func (f *msgBrokerFake) Deleted(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *msgBrokerFake) Restored(_ context.Context, task internal.Task) error {
	f.restored = append(f.restored, task)
	return f.err
}

type categoryResolverFake struct {
	existsFn func(ctx context.Context, id int64) (bool, error)
}

func (f *categoryResolverFake) ExistsActive(ctx context.Context, id int64) (bool, error) {
	return f.existsFn(ctx, id)
}

func newTestTask(repo TaskRepository, search TaskSearchRepository, broker TaskMessageBrokerRepository, categories CategoryResolver) *Task {
	svc := NewTask(zap.NewNop(), repo, search, broker, categories)
	svc.now = func() time.Time { return testNow }

	return svc
}

func activeCategories(ids ...int64) *categoryResolverFake {
	return &categoryResolverFake{
		existsFn: func(_ context.Context, id int64) (bool, error) {
			for _, known := range ids {
				if id == known {
					return true, nil
				}
			}

			return false, nil
		},
	}
}

func ptrInt64(i int64) *int64 { return &i }

func ptrPriority(p internal.Priority) *internal.Priority { return &p }

func TestTask_Create(t *testing.T) {
	t.Parallel()

	t.Run("defaults priority to low and publishes created", func(t *testing.T) {
		t.Parallel()

		var gotParams internal.TaskParams
		var gotNow time.Time

		repo := &taskRepoFake{
			createFn: func(_ context.Context, params internal.TaskParams, now time.Time) (internal.Task, error) {
				gotParams = params
				gotNow = now

				return internal.Task{ID: 1, Title: params.Title, Priority: params.Priority}, nil
			},
		}
		broker := &msgBrokerFake{}

		svc := newTestTask(repo, nil, broker, activeCategories())

		task, err := svc.Create(context.Background(), internal.TaskParams{Title: "  Buy milk  "})
		require.NoError(t, err)

		assert.Equal(t, "Buy milk", gotParams.Title)
		assert.Equal(t, internal.PriorityLow, gotParams.Priority)
		assert.Equal(t, testNow, gotNow)
		assert.Equal(t, int64(1), task.ID)

		require.Len(t, broker.created, 1)
		assert.Equal(t, int64(1), broker.created[0].ID)
	})

	t.Run("rejects invalid params before hitting the store", func(t *testing.T) {
		t.Parallel()

		repo := &taskRepoFake{
			createFn: func(context.Context, internal.TaskParams, time.Time) (internal.Task, error) {
				t.Fatal("store must not be called")
				return internal.Task{}, nil
			},
		}

		svc := newTestTask(repo, nil, &msgBrokerFake{}, activeCategories())

		_, err := svc.Create(context.Background(), internal.TaskParams{Title: "   "})

		var ierr *internal.Error
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())
	})

	t.Run("rejects unknown category reference", func(t *testing.T) {
		t.Parallel()

		repo := &taskRepoFake{
			createFn: func(context.Context, internal.TaskParams, time.Time) (internal.Task, error) {
				t.Fatal("store must not be called")
				return internal.Task{}, nil
			},
		}

		svc := newTestTask(repo, nil, &msgBrokerFake{}, activeCategories(1))

		_, err := svc.Create(context.Background(), internal.TaskParams{
			Title:      "Buy milk",
			CategoryID: ptrInt64(99),
		})

		var ierr *internal.Error
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, internal.ErrorCodeInvalidReference, ierr.Code())
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		t.Parallel()

		repo := &taskRepoFake{
			createFn: func(_ context.Context, params internal.TaskParams, _ time.Time) (internal.Task, error) {
				return internal.Task{ID: 1, Title: params.Title}, nil
			},
		}
		broker := &msgBrokerFake{err: errors.New("broker down")}

		svc := newTestTask(repo, nil, broker, activeCategories())

		_, err := svc.Create(context.Background(), internal.TaskParams{Title: "Buy milk"})

		assert.NoError(t, err)
	})
}

func TestTask_Update_DoesNotDefaultPriority(t *testing.T) {
	t.Parallel()

	repo := &taskRepoFake{
		updateFn: func(context.Context, int64, internal.TaskParams, time.Time) (internal.Task, error) {
			t.Fatal("store must not be called")
			return internal.Task{}, nil
		},
	}

	svc := newTestTask(repo, nil, &msgBrokerFake{}, activeCategories())

	_, err := svc.Update(context.Background(), 1, internal.TaskParams{Title: "Renamed"})

	var ierr *internal.Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())
	assert.Contains(t, ierr.Fields(), "Priority")
}

func TestTask_ToggleCompletion(t *testing.T) {
	t.Parallel()

	repo := &taskRepoFake{
		toggleFn: func(_ context.Context, id int64, now time.Time) (internal.Task, error) {
			assert.Equal(t, testNow, now)
			return internal.Task{ID: id, IsCompleted: true}, nil
		},
	}
	broker := &msgBrokerFake{}

	svc := newTestTask(repo, nil, broker, activeCategories())

	task, err := svc.ToggleCompletion(context.Background(), 8)
	require.NoError(t, err)

	assert.True(t, task.IsCompleted)
	require.Len(t, broker.updated, 1)
}

func TestTask_Delete(t *testing.T) {
	t.Parallel()

	var deletedID int64

	repo := &taskRepoFake{
		softDeleteFn: func(_ context.Context, id int64, _ time.Time) error {
			deletedID = id
			return nil
		},
	}
	broker := &msgBrokerFake{}

	svc := newTestTask(repo, nil, broker, activeCategories())

	require.NoError(t, svc.Delete(context.Background(), 4))

	assert.Equal(t, int64(4), deletedID)
	assert.Equal(t, []int64{4}, broker.deleted)
}

func TestTask_Restore(t *testing.T) {
	t.Parallel()

	repo := &taskRepoFake{
		restoreFn: func(_ context.Context, id int64, _ time.Time) (internal.Task, error) {
			return internal.Task{ID: id}, nil
		},
	}
	broker := &msgBrokerFake{}

	svc := newTestTask(repo, nil, broker, activeCategories())

	task, err := svc.Restore(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, int64(4), task.ID)
	require.Len(t, broker.restored, 1)
}

func TestTask_CleanupDeleted(t *testing.T) {
	t.Parallel()

	t.Run("defaults the retention window", func(t *testing.T) {
		t.Parallel()

		var gotCutoff time.Time

		repo := &taskRepoFake{
			deleteOlderThanFn: func(_ context.Context, cutoff time.Time) (int64, error) {
				gotCutoff = cutoff
				return 3, nil
			},
		}

		svc := newTestTask(repo, nil, &msgBrokerFake{}, activeCategories())

		count, err := svc.CleanupDeleted(context.Background(), 0)
		require.NoError(t, err)

		assert.Equal(t, int64(3), count)
		assert.Equal(t, testNow.AddDate(0, 0, -DefaultRetentionDays), gotCutoff)
	})

	t.Run("honors an explicit window", func(t *testing.T) {
		t.Parallel()

		var gotCutoff time.Time

		repo := &taskRepoFake{
			deleteOlderThanFn: func(_ context.Context, cutoff time.Time) (int64, error) {
				gotCutoff = cutoff
				return 0, nil
			},
		}

		svc := newTestTask(repo, nil, &msgBrokerFake{}, activeCategories())

		_, err := svc.CleanupDeleted(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, testNow.AddDate(0, 0, -7), gotCutoff)
	})
}

func TestTask_Search(t *testing.T) {
	t.Parallel()

	repo := &taskRepoFake{
		searchFn: func(_ context.Context, criteria internal.SearchCriteria, now time.Time) ([]internal.Task, int64, error) {
			assert.Equal(t, 1, criteria.Page)
			assert.Equal(t, internal.DefaultPageSize, criteria.PageSize)
			assert.Equal(t, testNow, now)

			return []internal.Task{{ID: 1}}, 45, nil
		},
	}

	svc := newTestTask(repo, nil, &msgBrokerFake{}, activeCategories())

	res, err := svc.Search(context.Background(), internal.SearchCriteria{})
	require.NoError(t, err)

	assert.Equal(t, int64(45), res.TotalCount)
	assert.Equal(t, 3, res.TotalPages)
	assert.True(t, res.HasNextPage)
	assert.False(t, res.HasPreviousPage)
}

func TestTask_By_ClampsSize(t *testing.T) {
	t.Parallel()

	search := &searchRepoFake{
		searchFn: func(_ context.Context, term string, from, size int) ([]internal.Task, int64, error) {
			assert.Equal(t, "milk", term)
			assert.Equal(t, 0, from)
			assert.Equal(t, internal.DefaultPageSize, size)

			return nil, 0, nil
		},
	}

	svc := newTestTask(&taskRepoFake{}, search, &msgBrokerFake{}, activeCategories())

	_, _, err := svc.By(context.Background(), "milk", -5, 5000)

	assert.NoError(t, err)
}

func TestTask_BulkUpdate(t *testing.T) {
	t.Parallel()

	t.Run("empty ids short-circuit", func(t *testing.T) {
		t.Parallel()

		svc := newTestTask(&taskRepoFake{}, nil, &msgBrokerFake{}, activeCategories())

		count, err := svc.BulkUpdate(context.Background(), nil, internal.TaskPatch{Priority: ptrPriority(internal.PriorityHigh)})
		require.NoError(t, err)

		assert.Zero(t, count)
	})

	t.Run("empty patch short-circuits", func(t *testing.T) {
		t.Parallel()

		svc := newTestTask(&taskRepoFake{}, nil, &msgBrokerFake{}, activeCategories())

		count, err := svc.BulkUpdate(context.Background(), []int64{1, 2}, internal.TaskPatch{})
		require.NoError(t, err)

		assert.Zero(t, count)
	})

	t.Run("skips missing ids when republishing", func(t *testing.T) {
		t.Parallel()

		repo := &taskRepoFake{
			bulkUpdateFn: func(_ context.Context, ids []int64, patch internal.TaskPatch, _ time.Time) (int64, error) {
				assert.Equal(t, []int64{1, 2, 99}, ids)
				require.NotNil(t, patch.Priority)

				return 2, nil
			},
			findFn: func(_ context.Context, id int64) (internal.Task, error) {
				if id == 99 {
					return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "task 99 not found")
				}

				return internal.Task{ID: id}, nil
			},
		}
		broker := &msgBrokerFake{}

		svc := newTestTask(repo, nil, broker, activeCategories())

		count, err := svc.BulkUpdate(context.Background(), []int64{1, 2, 99},
			internal.TaskPatch{Priority: ptrPriority(internal.PriorityHigh)})
		require.NoError(t, err)

		assert.Equal(t, int64(2), count)
		assert.Len(t, broker.updated, 2)
	})

	t.Run("rejects an invalid patch", func(t *testing.T) {
		t.Parallel()

		svc := newTestTask(&taskRepoFake{}, nil, &msgBrokerFake{}, activeCategories())

		_, err := svc.BulkUpdate(context.Background(), []int64{1}, internal.TaskPatch{Priority: ptrPriority(9)})

		var ierr *internal.Error
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())
	})
}

func TestTask_BulkDelete(t *testing.T) {
	t.Parallel()

	repo := &taskRepoFake{
		bulkSoftDeleteFn: func(_ context.Context, ids []int64, _ time.Time) (int64, error) {
			return int64(len(ids)) - 1, nil
		},
	}
	broker := &msgBrokerFake{}

	svc := newTestTask(repo, nil, broker, activeCategories())

	count, err := svc.BulkDelete(context.Background(), []int64{1, 2, 99})
	require.NoError(t, err)

	assert.Equal(t, int64(2), count)
	assert.Equal(t, []int64{1, 2, 99}, broker.deleted)
}

func TestTask_Statistics_PrependsTotal(t *testing.T) {
	t.Parallel()

	repo := &taskRepoFake{
		statisticsFn: func(context.Context) ([]internal.StatisticsRow, error) {
			return []internal.StatisticsRow{
				{Label: "Uncategorized", TotalTasks: 1, PendingTasks: 1},
				{Label: "Work", TotalTasks: 3, CompletedTasks: 1, PendingTasks: 2, HighPriorityPending: 1},
			}, nil
		},
	}

	svc := newTestTask(repo, nil, &msgBrokerFake{}, activeCategories())

	rows, err := svc.Statistics(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, internal.TotalLabel, rows[0].Label)
	assert.Equal(t, int64(4), rows[0].TotalTasks)
	assert.Equal(t, int64(1), rows[0].CompletedTasks)
	assert.Equal(t, int64(3), rows[0].PendingTasks)
	assert.Equal(t, int64(1), rows[0].HighPriorityPending)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinos/tasktrack-api/internal"
)

type categoryRepoFake struct {
	listActiveFn   func(ctx context.Context) ([]internal.Category, error)
	findFn         func(ctx context.Context, id int64) (internal.Category, error)
	existsActiveFn func(ctx context.Context, id int64) (bool, error)
	nameTakenFn    func(ctx context.Context, name string, excludeID int64) (bool, error)
	createFn       func(ctx context.Context, params internal.CategoryParams, createdAt time.Time) (internal.Category, error)
	updateFn       func(ctx context.Context, id int64, params internal.CategoryParams) (internal.Category, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (f *categoryRepoFake) ListActive(ctx context.Context) ([]internal.Category, error) {
	return f.listActiveFn(ctx)
}

func (f *categoryRepoFake) Find(ctx context.Context, id int64) (internal.Category, error) {
	return f.findFn(ctx, id)
}

func (f *categoryRepoFake) ExistsActive(ctx context.Context, id int64) (bool, error) {
	return f.existsActiveFn(ctx, id)
}

func (f *categoryRepoFake) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	return f.nameTakenFn(ctx, name, excludeID)
}

func (f *categoryRepoFake) Create(ctx context.Context, params internal.CategoryParams, createdAt time.Time) (internal.Category, error) {
	return f.createFn(ctx, params, createdAt)
}

func (f *categoryRepoFake) Update(ctx context.Context, id int64, params internal.CategoryParams) (internal.Category, error) {
	return f.updateFn(ctx, id, params)
}

func (f *categoryRepoFake) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func ptrStr(s string) *string { return &s }

func TestCategory_Create(t *testing.T) {
	t.Parallel()

	t.Run("normalizes before storing", func(t *testing.T) {
		t.Parallel()

		var gotParams internal.CategoryParams

		repo := &categoryRepoFake{
			nameTakenFn: func(_ context.Context, name string, excludeID int64) (bool, error) {
				assert.Equal(t, "Work", name)
				assert.Zero(t, excludeID)

				return false, nil
			},
			createFn: func(_ context.Context, params internal.CategoryParams, _ time.Time) (internal.Category, error) {
				gotParams = params
				return internal.Category{ID: 1, Name: params.Name}, nil
			},
		}

		svc := NewCategory(repo)
		svc.now = func() time.Time { return testNow }

		category, err := svc.Create(context.Background(), internal.CategoryParams{
			Name:     "  Work  ",
			Color:    ptrStr("#3b82f6"),
			IsActive: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "Work", gotParams.Name)
		assert.Equal(t, "#3B82F6", *gotParams.Color)
		assert.Equal(t, int64(1), category.ID)
	})

	t.Run("rejects a taken name", func(t *testing.T) {
		t.Parallel()

		repo := &categoryRepoFake{
			nameTakenFn: func(context.Context, string, int64) (bool, error) {
				return true, nil
			},
			createFn: func(context.Context, internal.CategoryParams, time.Time) (internal.Category, error) {
				t.Fatal("store must not be called")
				return internal.Category{}, nil
			},
		}

		svc := NewCategory(repo)

		_, err := svc.Create(context.Background(), internal.CategoryParams{Name: "Work"})

		var ierr *internal.Error
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())
		assert.Contains(t, ierr.Error(), "Work")
	})

	t.Run("rejects invalid params", func(t *testing.T) {
		t.Parallel()

		svc := NewCategory(&categoryRepoFake{})

		_, err := svc.Create(context.Background(), internal.CategoryParams{Name: "", Color: ptrStr("blue")})

		var ierr *internal.Error
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())

		fields := ierr.Fields()
		assert.Contains(t, fields, "Name")
		assert.Contains(t, fields, "Color")
	})
}

func TestCategory_Update_ExcludesOwnName(t *testing.T) {
	t.Parallel()

	repo := &categoryRepoFake{
		nameTakenFn: func(_ context.Context, name string, excludeID int64) (bool, error) {
			assert.Equal(t, "Work", name)
			assert.Equal(t, int64(7), excludeID)

			return false, nil
		},
		updateFn: func(_ context.Context, id int64, params internal.CategoryParams) (internal.Category, error) {
			return internal.Category{ID: id, Name: params.Name}, nil
		},
	}

	svc := NewCategory(repo)

	category, err := svc.Update(context.Background(), 7, internal.CategoryParams{Name: "Work", IsActive: true})
	require.NoError(t, err)

	assert.Equal(t, int64(7), category.ID)
}

func TestCategory_Delete(t *testing.T) {
	t.Parallel()

	var deletedID int64

	repo := &categoryRepoFake{
		deleteFn: func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}

	svc := NewCategory(repo)

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Equal(t, int64(5), deletedID)
}

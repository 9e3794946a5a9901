package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinos/tasktrack-api/internal"
)

type categoryLookupFake struct {
	fn func(ctx context.Context, id int64) (string, string, error)
}

func (f *categoryLookupFake) Lookup(ctx context.Context, id int64) (string, string, error) {
	return f.fn(ctx, id)
}

func TestTask_Resolve(t *testing.T) {
	t.Parallel()

	categoryID := int64(3)

	t.Run("categorized record gets the live values", func(t *testing.T) {
		t.Parallel()

		store := &Task{
			categories: &categoryLookupFake{
				fn: func(_ context.Context, id int64) (string, string, error) {
					assert.Equal(t, int64(3), id)
					return "Work", "#00FF00", nil
				},
			},
		}

		task := internal.Task{ID: 1, CategoryID: &categoryID}
		require.NoError(t, store.resolve(context.Background(), &task))

		assert.Equal(t, "Work", task.CategoryName)
		assert.Equal(t, "#00FF00", task.CategoryColor)
	})

	t.Run("uncategorized record skips the lookup", func(t *testing.T) {
		t.Parallel()

		store := &Task{
			categories: &categoryLookupFake{
				fn: func(context.Context, int64) (string, string, error) {
					t.Fatal("lookup must not be called")
					return "", "", nil
				},
			},
		}

		task := internal.Task{ID: 1}
		require.NoError(t, store.resolve(context.Background(), &task))
	})

	t.Run("lookup failure surfaces", func(t *testing.T) {
		t.Parallel()

		store := &Task{
			categories: &categoryLookupFake{
				fn: func(context.Context, int64) (string, string, error) {
					return "", "", assert.AnError
				},
			},
		}

		task := internal.Task{ID: 1, CategoryID: &categoryID}
		assert.Error(t, store.resolve(context.Background(), &task))
	})
}

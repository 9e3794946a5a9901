package postgresql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinos/tasktrack-api/internal"
)

func TestTaskStatisticsQuery(t *testing.T) {
	t.Parallel()

	// One row per category, labeled after the fact: a category whose name
	// equals the uncategorized label must not absorb uncategorized tasks.
	assert.Contains(t, taskStatisticsQuery, "GROUP BY c.id, c.name")
	assert.Contains(t, taskStatisticsQuery, "COALESCE(c.name, $1)")
}

func TestBuildSearchWhere(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	ptrStr := func(s string) *string { return &s }
	ptrBool := func(b bool) *bool { return &b }
	ptrInt64 := func(i int64) *int64 { return &i }
	ptrPriority := func(p internal.Priority) *internal.Priority { return &p }
	ptrTime := func(t time.Time) *time.Time { return &t }

	t.Run("no filters", func(t *testing.T) {
		t.Parallel()

		where, args := buildSearchWhere(internal.SearchCriteria{}, now)

		assert.Equal(t, "WHERE NOT t.is_deleted", where)
		assert.Empty(t, args)
	})

	t.Run("search term matches title or description", func(t *testing.T) {
		t.Parallel()

		where, args := buildSearchWhere(internal.SearchCriteria{
			SearchTerm: ptrStr("milk"),
		}, now)

		assert.Equal(t, `WHERE NOT t.is_deleted AND (t.title ILIKE $1 ESCAPE '\' OR t.description ILIKE $1 ESCAPE '\')`, where)
		require.Len(t, args, 1)
		assert.Equal(t, "%milk%", args[0])
	})

	t.Run("pattern metacharacters match literally", func(t *testing.T) {
		t.Parallel()

		_, args := buildSearchWhere(internal.SearchCriteria{
			SearchTerm: ptrStr(`50%_done\`),
		}, now)

		require.Len(t, args, 1)
		assert.Equal(t, `%50\%\_done\\%`, args[0])
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		t.Parallel()

		where, args := buildSearchWhere(internal.SearchCriteria{
			IsCompleted: ptrBool(false),
			Priority:    ptrPriority(internal.PriorityHigh),
			CategoryID:  ptrInt64(7),
		}, now)

		assert.Equal(t,
			"WHERE NOT t.is_deleted AND t.is_completed = $1 AND t.priority = $2 AND t.category_id = $3",
			where)
		assert.Equal(t, []interface{}{false, internal.PriorityHigh, int64(7)}, args)
	})

	t.Run("date ranges", func(t *testing.T) {
		t.Parallel()

		after := now.AddDate(0, -1, 0)
		before := now

		where, args := buildSearchWhere(internal.SearchCriteria{
			CreatedAfter:  ptrTime(after),
			CreatedBefore: ptrTime(before),
			DueAfter:      ptrTime(after),
			DueBefore:     ptrTime(before),
		}, now)

		assert.Equal(t,
			"WHERE NOT t.is_deleted AND t.created_at >= $1 AND t.created_at <= $2 AND t.due_date >= $3 AND t.due_date <= $4",
			where)
		assert.Len(t, args, 4)
	})

	t.Run("overdue filter derives from now", func(t *testing.T) {
		t.Parallel()

		where, args := buildSearchWhere(internal.SearchCriteria{
			IsOverdue: ptrBool(true),
		}, now)

		assert.Equal(t,
			"WHERE NOT t.is_deleted AND (t.due_date IS NOT NULL AND t.due_date < $1 AND NOT t.is_completed)",
			where)
		require.Len(t, args, 1)
		assert.Equal(t, now, args[0])
	})

	t.Run("not overdue negates the whole condition", func(t *testing.T) {
		t.Parallel()

		where, _ := buildSearchWhere(internal.SearchCriteria{
			IsOverdue: ptrBool(false),
		}, now)

		assert.Equal(t,
			"WHERE NOT t.is_deleted AND NOT (t.due_date IS NOT NULL AND t.due_date < $1 AND NOT t.is_completed)",
			where)
	})

	t.Run("has estimate takes no argument", func(t *testing.T) {
		t.Parallel()

		where, args := buildSearchWhere(internal.SearchCriteria{
			HasEstimate: ptrBool(true),
		}, now)

		assert.Equal(t, "WHERE NOT t.is_deleted AND t.estimated_hours IS NOT NULL", where)
		assert.Empty(t, args)

		where, args = buildSearchWhere(internal.SearchCriteria{
			HasEstimate: ptrBool(false),
		}, now)

		assert.Equal(t, "WHERE NOT t.is_deleted AND t.estimated_hours IS NULL", where)
		assert.Empty(t, args)
	})
}

package internal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinos/tasktrack-api/internal"
)

func ptrStr(s string) *string        { return &s }
func ptrFloat(f float64) *float64    { return &f }
func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt64(i int64) *int64        { return &i }

func ptrPriority(p internal.Priority) *internal.Priority { return &p }

func TestPriority(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Low", internal.PriorityLow.Text())
	assert.Equal(t, "Medium", internal.PriorityMedium.Text())
	assert.Equal(t, "High", internal.PriorityHigh.Text())
	assert.Equal(t, "Unknown", internal.Priority(9).Text())

	assert.NoError(t, internal.PriorityMedium.Validate())
	assert.Error(t, internal.Priority(0).Validate())
	assert.Error(t, internal.Priority(4).Validate())
}

func TestTask_DueStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task internal.Task
		want internal.DueStatus
	}{
		{
			name: "no due date",
			task: internal.Task{},
			want: internal.DueStatusNone,
		},
		{
			name: "past due and pending",
			task: internal.Task{DueDate: ptrTime(now.Add(-time.Minute))},
			want: internal.DueStatusOverdue,
		},
		{
			name: "past due but completed",
			task: internal.Task{DueDate: ptrTime(now.Add(-time.Minute)), IsCompleted: true},
			want: internal.DueStatusNormal,
		},
		{
			name: "inside the lookahead window",
			task: internal.Task{DueDate: ptrTime(now.Add(23 * time.Hour))},
			want: internal.DueStatusDueSoon,
		},
		{
			name: "exactly at the window edge",
			task: internal.Task{DueDate: ptrTime(now.Add(internal.DueSoonWindow))},
			want: internal.DueStatusDueSoon,
		},
		{
			name: "beyond the window",
			task: internal.Task{DueDate: ptrTime(now.Add(25 * time.Hour))},
			want: internal.DueStatusNormal,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.task.DueStatus(now))
		})
	}
}

func TestTask_OverdueAndDueSoonAreExclusive(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	task := internal.Task{DueDate: ptrTime(now.Add(-time.Hour))}

	assert.True(t, task.IsOverdue(now))
	assert.False(t, task.IsDueSoon(now))
}

func TestTask_ResolvedCategoryName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Uncategorized", internal.Task{}.ResolvedCategoryName())
	assert.Equal(t, "Uncategorized", internal.Task{CategoryID: ptrInt64(3)}.ResolvedCategoryName())
	assert.Equal(t, "Work", internal.Task{CategoryID: ptrInt64(3), CategoryName: "Work"}.ResolvedCategoryName())
}

func TestTaskParams_Normalize(t *testing.T) {
	t.Parallel()

	params := internal.TaskParams{
		Title:       "  Buy milk  ",
		Description: ptrStr("   "),
	}

	params.Normalize()

	assert.Equal(t, "Buy milk", params.Title)
	assert.Nil(t, params.Description)
}

func TestTaskParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  internal.TaskParams
		withErr bool
		fields  []string
	}{
		{
			name:   "valid",
			params: internal.TaskParams{Title: "Buy milk", Priority: internal.PriorityLow},
		},
		{
			name: "valid with all optionals",
			params: internal.TaskParams{
				Title:          "Buy milk",
				Description:    ptrStr("2% if they have it"),
				Priority:       internal.PriorityHigh,
				EstimatedHours: ptrFloat(0.5),
			},
		},
		{
			name:    "missing title",
			params:  internal.TaskParams{Priority: internal.PriorityLow},
			withErr: true,
			fields:  []string{"Title"},
		},
		{
			name:    "title too long",
			params:  internal.TaskParams{Title: longString(201), Priority: internal.PriorityLow},
			withErr: true,
			fields:  []string{"Title"},
		},
		{
			name:    "description too long",
			params:  internal.TaskParams{Title: "ok", Description: ptrStr(longString(1001)), Priority: internal.PriorityLow},
			withErr: true,
			fields:  []string{"Description"},
		},
		{
			name:    "unknown priority",
			params:  internal.TaskParams{Title: "ok", Priority: 5},
			withErr: true,
			fields:  []string{"Priority"},
		},
		{
			name:    "estimated hours zero",
			params:  internal.TaskParams{Title: "ok", Priority: internal.PriorityLow, EstimatedHours: ptrFloat(0)},
			withErr: true,
			fields:  []string{"EstimatedHours"},
		},
		{
			name:    "estimated hours too large",
			params:  internal.TaskParams{Title: "ok", Priority: internal.PriorityLow, EstimatedHours: ptrFloat(1000)},
			withErr: true,
			fields:  []string{"EstimatedHours"},
		},
		{
			name:    "multiple violations reported together",
			params:  internal.TaskParams{Priority: 9, EstimatedHours: ptrFloat(-1)},
			withErr: true,
			fields:  []string{"Title", "Priority", "EstimatedHours"},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()
			if !tt.withErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)

			var ierr *internal.Error
			require.ErrorAs(t, err, &ierr)
			assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())

			fields := ierr.Fields()
			for _, field := range tt.fields {
				assert.Contains(t, fields, field)
			}
		})
	}
}

func TestTaskPatch(t *testing.T) {
	t.Parallel()

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()

		assert.True(t, internal.TaskPatch{}.IsZero())
		assert.False(t, internal.TaskPatch{Title: ptrStr("x")}.IsZero())
	})

	t.Run("normalize trims", func(t *testing.T) {
		t.Parallel()

		patch := internal.TaskPatch{
			Title:       ptrStr("  Renamed  "),
			Description: ptrStr(""),
		}

		patch.Normalize()

		assert.Equal(t, "Renamed", *patch.Title)
		assert.Nil(t, patch.Description)
	})

	t.Run("validates only present fields", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, internal.TaskPatch{}.Validate())
		assert.NoError(t, internal.TaskPatch{Priority: ptrPriority(internal.PriorityHigh)}.Validate())
		assert.Error(t, internal.TaskPatch{Priority: ptrPriority(7)}.Validate())
		assert.Error(t, internal.TaskPatch{EstimatedHours: ptrFloat(-2)}.Validate())
	})
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}

	return string(b)
}

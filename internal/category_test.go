package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinos/tasktrack-api/internal"
)

func TestCategory_CompletionPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category internal.Category
		want     float64
	}{
		{
			name:     "no tasks",
			category: internal.Category{},
			want:     0,
		},
		{
			name:     "all completed",
			category: internal.Category{ActiveTaskCount: 4, CompletedTaskCount: 4},
			want:     100,
		},
		{
			name:     "rounded to two decimals",
			category: internal.Category{ActiveTaskCount: 3, CompletedTaskCount: 1},
			want:     33.33,
		},
		{
			name:     "rounds up",
			category: internal.Category{ActiveTaskCount: 3, CompletedTaskCount: 2},
			want:     66.67,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, tt.category.CompletionPercentage(), 0.001)
		})
	}
}

func TestCategoryParams_Normalize(t *testing.T) {
	t.Parallel()

	params := internal.CategoryParams{
		Name:        "  Work  ",
		Description: ptrStr(""),
		Color:       ptrStr("#3b82f6"),
	}

	params.Normalize()

	assert.Equal(t, "Work", params.Name)
	assert.Nil(t, params.Description)
	require.NotNil(t, params.Color)
	assert.Equal(t, "#3B82F6", *params.Color)
}

func TestCategoryParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  internal.CategoryParams
		withErr bool
	}{
		{
			name:   "valid",
			params: internal.CategoryParams{Name: "Work", IsActive: true},
		},
		{
			name:   "valid with color",
			params: internal.CategoryParams{Name: "Work", Color: ptrStr("#FF0000")},
		},
		{
			name:    "missing name",
			params:  internal.CategoryParams{},
			withErr: true,
		},
		{
			name:    "name too long",
			params:  internal.CategoryParams{Name: longString(101)},
			withErr: true,
		},
		{
			name:    "description too long",
			params:  internal.CategoryParams{Name: "Work", Description: ptrStr(longString(501))},
			withErr: true,
		},
		{
			name:    "color without hash",
			params:  internal.CategoryParams{Name: "Work", Color: ptrStr("FF0000")},
			withErr: true,
		},
		{
			name:    "color too short",
			params:  internal.CategoryParams{Name: "Work", Color: ptrStr("#FFF")},
			withErr: true,
		},
		{
			name:    "color with invalid characters",
			params:  internal.CategoryParams{Name: "Work", Color: ptrStr("#GGGGGG")},
			withErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()
			if tt.withErr {
				var ierr *internal.Error
				require.ErrorAs(t, err, &ierr)
				assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())

				return
			}

			assert.NoError(t, err)
		})
	}
}

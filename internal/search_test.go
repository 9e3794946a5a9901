package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelinos/tasktrack-api/internal"
)

func TestSearchCriteria_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		criteria     internal.SearchCriteria
		wantPage     int
		wantPageSize int
	}{
		{
			name:         "defaults",
			criteria:     internal.SearchCriteria{},
			wantPage:     1,
			wantPageSize: internal.DefaultPageSize,
		},
		{
			name:         "negative page",
			criteria:     internal.SearchCriteria{Page: -3, PageSize: 10},
			wantPage:     1,
			wantPageSize: 10,
		},
		{
			name:         "page size over the cap",
			criteria:     internal.SearchCriteria{Page: 2, PageSize: 500},
			wantPage:     2,
			wantPageSize: internal.MaxPageSize,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.criteria.Normalize()

			assert.Equal(t, tt.wantPage, tt.criteria.Page)
			assert.Equal(t, tt.wantPageSize, tt.criteria.PageSize)
		})
	}
}

func TestSearchCriteria_Offset(t *testing.T) {
	t.Parallel()

	criteria := internal.SearchCriteria{Page: 3, PageSize: 20}

	assert.Equal(t, 40, criteria.Offset())
}

func TestNewSearchResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int64
		criteria internal.SearchCriteria
		want     internal.SearchResults
	}{
		{
			name:     "middle page",
			total:    45,
			criteria: internal.SearchCriteria{Page: 2, PageSize: 20},
			want: internal.SearchResults{
				TotalCount:      45,
				Page:            2,
				PageSize:        20,
				TotalPages:      3,
				HasNextPage:     true,
				HasPreviousPage: true,
			},
		},
		{
			name:     "first page",
			total:    45,
			criteria: internal.SearchCriteria{Page: 1, PageSize: 20},
			want: internal.SearchResults{
				TotalCount:      45,
				Page:            1,
				PageSize:        20,
				TotalPages:      3,
				HasNextPage:     true,
				HasPreviousPage: false,
			},
		},
		{
			name:     "last page",
			total:    45,
			criteria: internal.SearchCriteria{Page: 3, PageSize: 20},
			want: internal.SearchResults{
				TotalCount:      45,
				Page:            3,
				PageSize:        20,
				TotalPages:      3,
				HasNextPage:     false,
				HasPreviousPage: true,
			},
		},
		{
			name:     "page beyond the end",
			total:    45,
			criteria: internal.SearchCriteria{Page: 9, PageSize: 20},
			want: internal.SearchResults{
				TotalCount:      45,
				Page:            9,
				PageSize:        20,
				TotalPages:      3,
				HasNextPage:     false,
				HasPreviousPage: true,
			},
		},
		{
			name:     "no matches",
			total:    0,
			criteria: internal.SearchCriteria{Page: 1, PageSize: 20},
			want: internal.SearchResults{
				TotalCount:      0,
				Page:            1,
				PageSize:        20,
				TotalPages:      0,
				HasNextPage:     false,
				HasPreviousPage: false,
			},
		},
		{
			name:     "exact multiple of the page size",
			total:    40,
			criteria: internal.SearchCriteria{Page: 2, PageSize: 20},
			want: internal.SearchResults{
				TotalCount:      40,
				Page:            2,
				PageSize:        20,
				TotalPages:      2,
				HasNextPage:     false,
				HasPreviousPage: true,
			},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := internal.NewSearchResults(nil, tt.total, tt.criteria)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatisticsRow_CompletionPercentage(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, internal.StatisticsRow{}.CompletionPercentage(), 0.001)
	assert.InDelta(t, 33.33, internal.StatisticsRow{TotalTasks: 3, CompletedTasks: 1}.CompletionPercentage(), 0.001)
	assert.InDelta(t, 100, internal.StatisticsRow{TotalTasks: 2, CompletedTasks: 2}.CompletionPercentage(), 0.001)
}

package internal

import "time"

const (
	// DefaultPageSize applies when a search request does not set one.
	DefaultPageSize = 20
	// MaxPageSize caps the page size of a search request.
	MaxPageSize = 100
)

// SearchCriteria defines the filters of a task search. Nil pointers mean the
// filter is not applied; provided filters combine with logical AND.
type SearchCriteria struct {
	SearchTerm    *string
	IsCompleted   *bool
	Priority      *Priority
	CategoryID    *int64
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	DueAfter      *time.Time
	DueBefore     *time.Time
	IsOverdue     *bool
	HasEstimate   *bool

	Page     int
	PageSize int
}

// Normalize clamps pagination to a 1-indexed page and a page size within
// [1, MaxPageSize].
func (c *SearchCriteria) Normalize() {
	if c.Page < 1 {
		c.Page = 1
	}

	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}

	if c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}
}

// Offset returns the row offset of the requested page.
func (c SearchCriteria) Offset() int {
	return (c.Page - 1) * c.PageSize
}

// SearchResults is one page of matching tasks together with pagination
// metadata. An out-of-range page yields an empty Tasks slice with an
// accurate TotalCount.
type SearchResults struct {
	Tasks           []Task
	TotalCount      int64
	Page            int
	PageSize        int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// NewSearchResults derives the pagination metadata from the total count and
// the normalized criteria.
func NewSearchResults(tasks []Task, total int64, criteria SearchCriteria) SearchResults {
	totalPages := int((total + int64(criteria.PageSize) - 1) / int64(criteria.PageSize))

	return SearchResults{
		Tasks:           tasks,
		TotalCount:      total,
		Page:            criteria.Page,
		PageSize:        criteria.PageSize,
		TotalPages:      totalPages,
		HasNextPage:     criteria.Page < totalPages,
		HasPreviousPage: criteria.Page > 1 && total > 0,
	}
}

// StatisticsRow is one aggregate row of the statistics report, either the
// "Total" row or a per-category row.
type StatisticsRow struct {
	Label               string
	TotalTasks          int64
	CompletedTasks      int64
	PendingTasks        int64
	HighPriorityPending int64
}

// CompletionPercentage returns the completed share of the row, rounded to
// two decimals, zero for an empty row.
func (r StatisticsRow) CompletionPercentage() float64 {
	if r.TotalTasks == 0 {
		return 0
	}

	return round2(float64(r.CompletedTasks) / float64(r.TotalTasks) * 100)
}

// TotalLabel names the aggregate row spanning all non-deleted tasks.
const TotalLabel = "Total"

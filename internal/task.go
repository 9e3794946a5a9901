package internal

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Priority indicates how urgent a task is.
type Priority int8

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Validate checks the receiver is one of the supported values.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	}

	return NewErrorf(ErrorCodeInvalidArgument, "unknown priority value: %d", p)
}

// Text returns the human readable representation of the priority.
func (p Priority) Text() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}

	return "Unknown"
}

// DueStatus summarizes the relation between a task's due date, its completion
// flag and the current time.
type DueStatus string

const (
	DueStatusNone    DueStatus = "none"
	DueStatusOverdue DueStatus = "overdue"
	DueStatusDueSoon DueStatus = "due_soon"
	DueStatusNormal  DueStatus = "normal"
)

// DueSoonWindow is the lookahead used to flag tasks approaching their due
// date before they become overdue.
const DueSoonWindow = 24 * time.Hour

// UncategorizedName labels tasks that do not reference a category.
const UncategorizedName = "Uncategorized"

// Task is a unit of work tracked by the system.
type Task struct {
	ID                   int64
	Title                string
	Description          *string
	IsCompleted          bool
	Priority             Priority
	CategoryID           *int64
	DueDate              *time.Time
	EstimatedHours       *float64
	NotificationsEnabled bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
	IsDeleted            bool
	DeletedAt            *time.Time

	// Resolved from the referenced category at read time, empty when the
	// task is uncategorized or the category can't be resolved.
	CategoryName  string
	CategoryColor string
}

// ResolvedCategoryName returns the linked category's name, falling back to
// "Uncategorized" when no category resolves.
func (t Task) ResolvedCategoryName() string {
	if t.CategoryID == nil || t.CategoryName == "" {
		return UncategorizedName
	}

	return t.CategoryName
}

// IsOverdue indicates the due date passed while the task was still pending.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.IsCompleted
}

// IsDueSoon indicates the due date falls inside the lookahead window.
// Overdue takes precedence: the two flags are never both set.
func (t Task) IsDueSoon(now time.Time) bool {
	if t.DueDate == nil || t.IsCompleted || t.IsOverdue(now) {
		return false
	}

	return !t.DueDate.After(now.Add(DueSoonWindow))
}

// DueStatus derives the due status in precedence order.
func (t Task) DueStatus(now time.Time) DueStatus {
	switch {
	case t.DueDate == nil:
		return DueStatusNone
	case t.IsOverdue(now):
		return DueStatusOverdue
	case t.IsDueSoon(now):
		return DueStatusDueSoon
	}

	return DueStatusNormal
}

// TaskParams defines the mutable fields accepted when creating or updating a
// task. A generic update overwrites every one of these and nothing else.
type TaskParams struct {
	Title                string
	Description          *string
	Priority             Priority
	CategoryID           *int64
	DueDate              *time.Time
	EstimatedHours       *float64
	NotificationsEnabled bool
}

// Normalize trims free-text fields and collapses blank optional strings to
// absent. Must run before Validate so length rules see the trimmed values.
func (p *TaskParams) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = normalizeOptional(p.Description)
}

// Validate reports every violated field, not just the first one.
func (p TaskParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Title,
			validation.Required.Error("is required"),
			validation.Length(1, 200)),
		validation.Field(&p.Description,
			validation.Length(0, 1000)),
		validation.Field(&p.Priority,
			validation.Required.Error("is required"),
			validation.In(PriorityLow, PriorityMedium, PriorityHigh).Error("must be 1 (Low), 2 (Medium) or 3 (High)")),
		validation.Field(&p.EstimatedHours,
			validation.By(validEstimatedHours)),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "params validation")
	}

	return nil
}

// TaskPatch carries the optional fields of a bulk update. Nil fields leave
// the task's current value unchanged.
type TaskPatch struct {
	Title          *string
	Description    *string
	IsCompleted    *bool
	Priority       *Priority
	CategoryID     *int64
	DueDate        *time.Time
	EstimatedHours *float64
}

// Normalize trims the free-text patch fields. A blank description collapses
// to "not present" rather than clearing the stored value.
func (p *TaskPatch) Normalize() {
	if p.Title != nil {
		trimmed := strings.TrimSpace(*p.Title)
		p.Title = &trimmed
	}

	p.Description = normalizeOptional(p.Description)
}

// IsZero indicates no patch field is set.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.IsCompleted == nil &&
		p.Priority == nil &&
		p.CategoryID == nil &&
		p.DueDate == nil &&
		p.EstimatedHours == nil
}

// Validate checks only the fields present in the patch.
func (p TaskPatch) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Title,
			validation.Length(1, 200)),
		validation.Field(&p.Description,
			validation.Length(0, 1000)),
		validation.Field(&p.Priority,
			validation.By(validPatchPriority)),
		validation.Field(&p.EstimatedHours,
			validation.By(validEstimatedHours)),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "patch validation")
	}

	return nil
}

func validEstimatedHours(value interface{}) error {
	hours, ok := value.(*float64)
	if !ok || hours == nil {
		return nil
	}

	if *hours <= 0 || *hours > 999.99 {
		return NewErrorf(ErrorCodeInvalidArgument, "must be greater than 0 and at most 999.99")
	}

	return nil
}

func validPatchPriority(value interface{}) error {
	priority, ok := value.(*Priority)
	if !ok || priority == nil {
		return nil
	}

	return priority.Validate()
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

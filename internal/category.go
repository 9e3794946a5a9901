package internal

import (
	"math"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var hexColorRegEx = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Category is a label grouping tasks.
type Category struct {
	ID          int64
	Name        string
	Description *string
	Color       *string
	IsActive    bool
	CreatedAt   time.Time

	// Derived from related tasks at read time, never stored.
	ActiveTaskCount    int64
	CompletedTaskCount int64
}

// CompletionPercentage returns the completed share of the category's
// non-deleted tasks, rounded to two decimals. Zero when the category has no
// tasks.
func (c Category) CompletionPercentage() float64 {
	if c.ActiveTaskCount == 0 {
		return 0
	}

	return round2(float64(c.CompletedTaskCount) / float64(c.ActiveTaskCount) * 100)
}

// CategoryParams defines the fields accepted when creating or updating a
// category.
type CategoryParams struct {
	Name        string
	Description *string
	Color       *string
	IsActive    bool
}

// Normalize trims free text, collapses blank optional strings and uppercases
// the hex color code.
func (p *CategoryParams) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = normalizeOptional(p.Description)
	p.Color = normalizeOptional(p.Color)

	if p.Color != nil {
		upper := strings.ToUpper(*p.Color)
		p.Color = &upper
	}
}

// Validate reports every violated field.
func (p CategoryParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.Required.Error("is required"),
			validation.Length(1, 100)),
		validation.Field(&p.Description,
			validation.Length(0, 500)),
		validation.Field(&p.Color,
			validation.Match(hexColorRegEx).Error("must be a hex color like #3B82F6")),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "params validation")
	}

	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

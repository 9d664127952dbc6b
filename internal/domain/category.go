package domain

// Category classifies a task into one of four fixed buckets.
type Category string

const (
	CategoryStudy    Category = "study"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"

	// DefaultCategory is assigned when no category is given.
	DefaultCategory = CategoryStudy
)

// AllCategories returns the fixed category set in display order.
func AllCategories() []Category {
	return []Category{CategoryStudy, CategoryWork, CategoryPersonal, CategoryHealth}
}

// ParseCategory validates external input against the closed category set.
// An empty string resolves to the default.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return DefaultCategory, nil
	}
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// IsValid returns true if the category is a known valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryStudy, CategoryWork, CategoryPersonal, CategoryHealth:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the category.
func (c Category) Display() string {
	switch c {
	case CategoryStudy:
		return "Study"
	case CategoryWork:
		return "Work"
	case CategoryPersonal:
		return "Personal"
	case CategoryHealth:
		return "Health"
	default:
		return string(c)
	}
}

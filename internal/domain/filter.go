package domain

// FilterAll is the sentinel for "no filtering" on status and category.
const FilterAll = "all"

// Filter is the transient query state applied by the presentation layer.
// It affects only query results, never the underlying collection.
// Fields are ordered to minimize memory padding.
type Filter struct {
	Status   string   // Exact status match, or FilterAll
	Category string   // Exact category match, or FilterAll
	Search   string   // Case-insensitive substring over title and description
	Sort     SortMode // Result ordering
}

// DefaultFilter returns the filter that passes every task, sorted newest first.
func DefaultFilter() Filter {
	return Filter{
		Status:   FilterAll,
		Category: FilterAll,
		Search:   "",
		Sort:     SortNewest,
	}
}

// MatchesStatus reports whether the task passes the status filter.
func (f Filter) MatchesStatus(t *Task) bool {
	return f.Status == "" || f.Status == FilterAll || string(t.Status) == f.Status
}

// MatchesCategory reports whether the task passes the category filter.
func (f Filter) MatchesCategory(t *Task) bool {
	return f.Category == "" || f.Category == FilterAll || string(t.Category) == f.Category
}

// Matches reports whether the task passes all filter predicates.
func (f Filter) Matches(t *Task) bool {
	return f.MatchesStatus(t) && f.MatchesCategory(t) && t.MatchesSearch(f.Search)
}

// SortMode selects the comparator used to order query results.
type SortMode string

const (
	SortNewest       SortMode = "newest"       // Created descending
	SortDeadline     SortMode = "deadline"     // Deadline ascending, absent last
	SortPriority     SortMode = "priority"     // high, medium, low
	SortAlphabetical SortMode = "alphabetical" // Locale-aware title order
)

// ParseSortMode validates external input against the closed sort-mode set.
// An empty string resolves to SortNewest.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortNewest, nil
	}
	m := SortMode(s)
	if !m.IsValid() {
		return "", ErrInvalidSortMode
	}
	return m, nil
}

// IsValid returns true if the sort mode is a known valid value.
func (m SortMode) IsValid() bool {
	switch m {
	case SortNewest, SortDeadline, SortPriority, SortAlphabetical:
		return true
	default:
		return false
	}
}

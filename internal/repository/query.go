package repository

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/harutoki/focusdeck/internal/domain"
)

// titleCollator orders titles with locale-aware, case-insensitive rules.
var titleCollator = collate.New(language.English, collate.IgnoreCase)

// Filtered applies the filter predicates in order (status, category,
// search) and sorts the result. The returned slice holds copies; neither
// the filter nor the collection is mutated.
func (r *Repository) Filtered(f domain.Filter) []*domain.Task {
	var result []*domain.Task
	for _, task := range r.tasks {
		if f.Matches(task) {
			result = append(result, task.Clone())
		}
	}
	SortTasks(result, f.Sort)
	return result
}

// SortTasks orders tasks in place by the given mode. All comparators are
// stable, so ties keep their original relative order.
func SortTasks(tasks []*domain.Task, mode domain.SortMode) {
	switch mode {
	case domain.SortNewest:
		slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
			return b.Created.Compare(a.Created)
		})
	case domain.SortDeadline:
		slices.SortStableFunc(tasks, compareDeadline)
	case domain.SortPriority:
		slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		})
	case domain.SortAlphabetical:
		slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
			return titleCollator.CompareString(a.Title, b.Title)
		})
	}
}

// compareDeadline orders by deadline ascending; tasks without a deadline
// sort after all tasks that have one.
func compareDeadline(a, b *domain.Task) int {
	switch {
	case !a.HasDeadline() && !b.HasDeadline():
		return 0
	case !a.HasDeadline():
		return 1
	case !b.HasDeadline():
		return -1
	default:
		switch {
		case a.Deadline < b.Deadline:
			return -1
		case a.Deadline > b.Deadline:
			return 1
		default:
			return 0
		}
	}
}

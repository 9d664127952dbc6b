// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task is the central entity of the dashboard.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created     time.Time  `json:"createdAt"`             // Creation time, never mutated
	Completed   *time.Time `json:"completedAt"`           // Set iff Status == StatusCompleted
	ID          string     `json:"id"`                    // Opaque unique identifier
	Title       string     `json:"title"`                 // Title (required, trimmed)
	Description string     `json:"description,omitempty"` // Description (optional, trimmed)
	Deadline    string     `json:"deadline,omitempty"`    // YYYY-MM-DD, empty = no deadline
	Category    Category   `json:"category"`              // Closed category set
	Priority    Priority   `json:"priority"`              // Closed priority set
	Status      Status     `json:"status"`                // Lifecycle state
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	cloned := *t
	if t.Completed != nil {
		completed := *t.Completed
		cloned.Completed = &completed
	}
	return &cloned
}

// HasDeadline returns true if the task carries a deadline.
func (t *Task) HasDeadline() bool {
	return t.Deadline != ""
}

// IsOverdue returns true if the deadline lies strictly before today.
// Completed tasks are never overdue.
func (t *Task) IsOverdue(today time.Time) bool {
	if !t.HasDeadline() || t.Status == StatusCompleted {
		return false
	}
	return t.Deadline < DayKey(today)
}

// IsDueSoon returns true if the deadline falls within the next days
// calendar days (today included). Completed tasks are never due soon.
func (t *Task) IsDueSoon(today time.Time, days int) bool {
	if !t.HasDeadline() || t.Status == StatusCompleted {
		return false
	}
	key := DayKey(today)
	return t.Deadline >= key && t.Deadline <= DayKey(today.AddDate(0, 0, days))
}

// MatchesSearch reports whether the query occurs in the title or the
// description, case-insensitively. An empty query matches everything.
func (t *Task) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// TaskPatch describes a partial update to a task. Nil fields are left
// unchanged. Status transitions into and out of StatusCompleted maintain
// the Completed timestamp.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *Category
	Priority    *Priority
	Deadline    *string // Empty string clears the deadline
	Status      *Status
}

// IsEmpty returns true if the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.Priority == nil && p.Deadline == nil && p.Status == nil
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_Clone(t *testing.T) {
	completed := time.Date(2026, 8, 20, 10, 0, 0, 0, time.Local)
	task := &Task{
		ID:        "id-1",
		Title:     "Read chapter 4",
		Status:    StatusCompleted,
		Completed: &completed,
	}

	cloned := task.Clone()
	require.NotSame(t, task, cloned)
	require.NotSame(t, task.Completed, cloned.Completed)
	assert.Equal(t, task, cloned)

	// Mutating the clone must not leak into the original.
	*cloned.Completed = cloned.Completed.AddDate(0, 0, 1)
	assert.Equal(t, completed, *task.Completed)
}

func TestTask_IsOverdue(t *testing.T) {
	today := time.Date(2026, 8, 23, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		deadline string
		status   Status
		want     bool
	}{
		{"no deadline", "", StatusPending, false},
		{"deadline yesterday", "2026-08-22", StatusPending, true},
		{"deadline today", "2026-08-23", StatusPending, false},
		{"deadline tomorrow", "2026-08-24", StatusPending, false},
		{"completed task never overdue", "2026-08-22", StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Deadline: tt.deadline, Status: tt.status}
			assert.Equal(t, tt.want, task.IsOverdue(today))
		})
	}
}

func TestTask_IsDueSoon(t *testing.T) {
	today := time.Date(2026, 8, 23, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		deadline string
		status   Status
		want     bool
	}{
		{"due today", "2026-08-23", StatusPending, true},
		{"due at window edge", "2026-08-26", StatusPending, true},
		{"due past window", "2026-08-27", StatusPending, false},
		{"already overdue", "2026-08-22", StatusPending, false},
		{"no deadline", "", StatusPending, false},
		{"completed", "2026-08-24", StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Deadline: tt.deadline, Status: tt.status}
			assert.Equal(t, tt.want, task.IsDueSoon(today, 3))
		})
	}
}

func TestTask_MatchesSearch(t *testing.T) {
	task := &Task{Title: "Review Pull Request", Description: "backend repo"}

	assert.True(t, task.MatchesSearch(""))
	assert.True(t, task.MatchesSearch("pull"))
	assert.True(t, task.MatchesSearch("BACKEND"))
	assert.False(t, task.MatchesSearch("frontend"))
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	assert.True(t, TaskPatch{}.IsEmpty())

	title := "x"
	assert.False(t, TaskPatch{Title: &title}.IsEmpty())

	status := StatusCompleted
	assert.False(t, TaskPatch{Status: &status}.IsEmpty())
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Matches(t *testing.T) {
	task := &Task{
		Title:    "Morning run",
		Category: CategoryHealth,
		Status:   StatusPending,
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"default passes everything", DefaultFilter(), true},
		{"status match", Filter{Status: "pending", Category: FilterAll}, true},
		{"status mismatch", Filter{Status: "completed", Category: FilterAll}, false},
		{"category match", Filter{Status: FilterAll, Category: "health"}, true},
		{"category mismatch", Filter{Status: FilterAll, Category: "work"}, false},
		{"search match", Filter{Status: FilterAll, Category: FilterAll, Search: "run"}, true},
		{"search mismatch", Filter{Status: FilterAll, Category: FilterAll, Search: "swim"}, false},
		{"zero-value filter passes", Filter{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(task))
		})
	}
}

func TestParseSortMode(t *testing.T) {
	m, err := ParseSortMode("")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, m)

	m, err = ParseSortMode("deadline")
	require.NoError(t, err)
	assert.Equal(t, SortDeadline, m)

	_, err = ParseSortMode("oldest")
	assert.ErrorIs(t, err, ErrInvalidSortMode)
}

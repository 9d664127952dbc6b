package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutoki/focusdeck/internal/domain"
	"github.com/harutoki/focusdeck/internal/testutil"
)

func seedTasks(t *testing.T) (*Repository, *testutil.MockClock) {
	t.Helper()
	store := testutil.NewMockStore()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)}
	repo := New(store, clock, testutil.NopLogger{})
	repo.Load()

	seeds := []CreateInput{
		{Title: "buy groceries", Category: domain.CategoryPersonal, Priority: domain.PriorityLow},
		{Title: "Annual checkup", Category: domain.CategoryHealth, Priority: domain.PriorityHigh, Deadline: "2026-09-15"},
		{Title: "write review", Category: domain.CategoryWork, Priority: domain.PriorityMedium, Deadline: "2026-08-25"},
		{Title: "Zoology notes", Category: domain.CategoryStudy, Priority: domain.PriorityHigh},
	}
	for _, in := range seeds {
		_, err := repo.Create(in)
		require.NoError(t, err)
		clock.Advance(time.Hour)
	}
	return repo, clock
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestFiltered_StatusAndCategory(t *testing.T) {
	repo, _ := seedTasks(t)

	all := repo.Filtered(domain.DefaultFilter())
	assert.Len(t, all, 4)

	f := domain.DefaultFilter()
	f.Category = "work"
	assert.Equal(t, []string{"write review"}, titles(repo.Filtered(f)))

	f = domain.DefaultFilter()
	f.Status = "completed"
	assert.Empty(t, repo.Filtered(f))
}

func TestFiltered_Search(t *testing.T) {
	repo, _ := seedTasks(t)

	f := domain.DefaultFilter()
	f.Search = "NOTES"
	assert.Equal(t, []string{"Zoology notes"}, titles(repo.Filtered(f)))
}

func TestFiltered_SortNewest(t *testing.T) {
	repo, _ := seedTasks(t)

	got := titles(repo.Filtered(domain.DefaultFilter()))
	assert.Equal(t, []string{"Zoology notes", "write review", "Annual checkup", "buy groceries"}, got)
}

func TestFiltered_SortDeadline(t *testing.T) {
	repo, _ := seedTasks(t)

	f := domain.DefaultFilter()
	f.Sort = domain.SortDeadline
	got := titles(repo.Filtered(f))

	// Deadline ascending; tasks without a deadline keep insertion order at the end.
	assert.Equal(t, []string{"write review", "Annual checkup", "buy groceries", "Zoology notes"}, got)
}

func TestFiltered_SortPriority(t *testing.T) {
	repo, _ := seedTasks(t)

	f := domain.DefaultFilter()
	f.Sort = domain.SortPriority
	got := titles(repo.Filtered(f))

	// High before medium before low; equal priorities keep insertion order.
	assert.Equal(t, []string{"Annual checkup", "Zoology notes", "write review", "buy groceries"}, got)
}

func TestFiltered_SortAlphabetical(t *testing.T) {
	repo, _ := seedTasks(t)

	f := domain.DefaultFilter()
	f.Sort = domain.SortAlphabetical
	got := titles(repo.Filtered(f))

	// Case-insensitive ordering.
	assert.Equal(t, []string{"Annual checkup", "buy groceries", "write review", "Zoology notes"}, got)
}

func TestFiltered_ReturnsCopies(t *testing.T) {
	repo, _ := seedTasks(t)

	got := repo.Filtered(domain.DefaultFilter())
	got[0].Title = "mutated"

	again := repo.Filtered(domain.DefaultFilter())
	assert.NotEqual(t, "mutated", again[0].Title)
}

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutoki/focusdeck/internal/domain"
	"github.com/harutoki/focusdeck/internal/testutil"
)

func newTestRepository(t *testing.T) (*Repository, *testutil.MockStore, *testutil.MockClock) {
	t.Helper()
	store := testutil.NewMockStore()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 23, 10, 0, 0, 0, time.Local)}
	repo := New(store, clock, testutil.NopLogger{})
	repo.Load()
	return repo, store, clock
}

func TestRepository_Create(t *testing.T) {
	repo, store, clock := newTestRepository(t)

	task, err := repo.Create(CreateInput{
		Title:       "  Read chapter 4  ",
		Description: " notes ",
		Category:    domain.CategoryStudy,
		Priority:    domain.PriorityHigh,
		Deadline:    "2026-09-01",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Read chapter 4", task.Title)
	assert.Equal(t, "notes", task.Description)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, clock.NowTime, task.Created)
	assert.Nil(t, task.Completed)

	// The collection and the stats record were persisted.
	assert.Contains(t, store.Data, domain.StoreKeyTasks)
	assert.Contains(t, store.Data, domain.StoreKeyStats)
	assert.Equal(t, 1, repo.Stats().TotalTasksCreated)
}

func TestRepository_Create_Validation(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	_, err := repo.Create(CreateInput{Title: "   ", Category: domain.CategoryWork, Priority: domain.PriorityLow})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = repo.Create(CreateInput{Title: "x", Category: "chores", Priority: domain.PriorityLow})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = repo.Create(CreateInput{Title: "x", Category: domain.CategoryWork, Priority: "urgent"})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)

	_, err = repo.Create(CreateInput{Title: "x", Category: domain.CategoryWork, Priority: domain.PriorityLow, Deadline: "soon"})
	assert.ErrorIs(t, err, domain.ErrInvalidDeadline)

	assert.Equal(t, 0, repo.Len())
}

func TestRepository_Update_StatusTransitions(t *testing.T) {
	repo, _, clock := newTestRepository(t)
	task := mustCreate(t, repo, "Write report")

	completed := domain.StatusCompleted
	updated, err := repo.Update(task.ID, domain.TaskPatch{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.Completed)
	assert.Equal(t, clock.NowTime, *updated.Completed)
	assert.Equal(t, 1, repo.Stats().TotalTasksCompleted)

	// Re-completing an already completed task records nothing new.
	_, err = repo.Update(task.ID, domain.TaskPatch{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Stats().TotalTasksCompleted)

	// Leaving completed clears the timestamp.
	pending := domain.StatusPending
	updated, err = repo.Update(task.ID, domain.TaskPatch{Status: &pending})
	require.NoError(t, err)
	assert.Nil(t, updated.Completed)
	assert.Equal(t, 1, repo.Stats().TotalTasksCompleted)
}

func TestRepository_Update_Fields(t *testing.T) {
	repo, _, _ := newTestRepository(t)
	task := mustCreate(t, repo, "Old title")

	title := "  New title  "
	desc := "details"
	category := domain.CategoryHealth
	deadline := "2026-10-01"
	updated, err := repo.Update(task.ID, domain.TaskPatch{
		Title:       &title,
		Description: &desc,
		Category:    &category,
		Deadline:    &deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "details", updated.Description)
	assert.Equal(t, domain.CategoryHealth, updated.Category)
	assert.Equal(t, "2026-10-01", updated.Deadline)

	// Clearing the deadline with an empty string.
	empty := ""
	updated, err = repo.Update(task.ID, domain.TaskPatch{Deadline: &empty})
	require.NoError(t, err)
	assert.False(t, updated.HasDeadline())
}

func TestRepository_Update_Errors(t *testing.T) {
	repo, _, _ := newTestRepository(t)
	task := mustCreate(t, repo, "A task")

	_, err := repo.Update(task.ID, domain.TaskPatch{})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToPatch)

	blank := " "
	_, err = repo.Update(task.ID, domain.TaskPatch{Title: &blank})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	bad := domain.Status("done")
	_, err = repo.Update(task.ID, domain.TaskPatch{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	status := domain.StatusCompleted
	_, err = repo.Update("missing", domain.TaskPatch{Status: &status})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, _, _ := newTestRepository(t)
	task := mustCreate(t, repo, "Doomed")

	assert.True(t, repo.Delete(task.ID))
	assert.False(t, repo.Delete(task.ID))
	assert.Equal(t, 0, repo.Len())
	assert.Nil(t, repo.Get(task.ID))

	// Deleting does not rewind the rolling record.
	assert.Equal(t, 1, repo.Stats().TotalTasksCreated)
}

func TestRepository_GetReturnsCopy(t *testing.T) {
	repo, _, _ := newTestRepository(t)
	task := mustCreate(t, repo, "Original")

	got := repo.Get(task.ID)
	got.Title = "Mutated"
	assert.Equal(t, "Original", repo.Get(task.ID).Title)
}

func TestRepository_BulkOperations(t *testing.T) {
	repo, _, _ := newTestRepository(t)
	a := mustCreate(t, repo, "a")
	b := mustCreate(t, repo, "b")

	completed := domain.StatusCompleted
	updated := repo.BulkUpdate([]string{a.ID, "missing", b.ID}, domain.TaskPatch{Status: &completed})
	assert.Equal(t, 2, updated)

	deleted := repo.BulkDelete([]string{a.ID, "missing"})
	assert.Equal(t, 1, deleted)
	assert.Equal(t, 1, repo.Len())
}

func TestRepository_ClearCompleted(t *testing.T) {
	repo, _, _ := newTestRepository(t)
	a := mustCreate(t, repo, "a")
	mustCreate(t, repo, "b")
	c := mustCreate(t, repo, "c")

	completed := domain.StatusCompleted
	repo.BulkUpdate([]string{a.ID, c.ID}, domain.TaskPatch{Status: &completed})

	assert.Equal(t, 2, repo.ClearCompleted())
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, 0, repo.ClearCompleted())
}

func TestRepository_Load_Migration(t *testing.T) {
	store := testutil.NewMockStore()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 23, 10, 0, 0, 0, time.Local)}
	completedAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)

	// Legacy records: missing id, invalid enums, zero createdAt, and a
	// broken completedAt invariant in both directions.
	store.Set(domain.StoreKeyTasks, []*domain.Task{
		{Title: "no id", Category: "old-cat", Priority: "P1", Status: "open"},
		{ID: "keep-id", Title: "done without stamp", Category: domain.CategoryWork,
			Priority: domain.PriorityLow, Status: domain.StatusCompleted, Created: completedAt},
		{ID: "keep-id-2", Title: "pending with stamp", Category: domain.CategoryWork,
			Priority: domain.PriorityLow, Status: domain.StatusPending, Created: completedAt,
			Completed: &completedAt},
	})

	repo := New(store, clock, testutil.NopLogger{})
	migrated := repo.Load()
	assert.Equal(t, 3, migrated)

	tasks := repo.All()
	require.Len(t, tasks, 3)

	assert.NotEmpty(t, tasks[0].ID)
	assert.Equal(t, domain.DefaultCategory, tasks[0].Category)
	assert.Equal(t, domain.DefaultPriority, tasks[0].Priority)
	assert.Equal(t, domain.StatusPending, tasks[0].Status)
	assert.True(t, tasks[0].Created.Equal(clock.NowTime))

	assert.Equal(t, "keep-id", tasks[1].ID)
	require.NotNil(t, tasks[1].Completed)
	assert.True(t, tasks[1].Completed.Equal(completedAt))

	assert.Nil(t, tasks[2].Completed)

	// A second load over the migrated data changes nothing.
	repo2 := New(store, clock, testutil.NopLogger{})
	assert.Equal(t, 0, repo2.Load())
}

func TestRepository_PersistFailureKeepsMemory(t *testing.T) {
	repo, store, _ := newTestRepository(t)
	store.FailSet = true

	task, err := repo.Create(CreateInput{Title: "survives", Category: domain.CategoryWork, Priority: domain.PriorityLow})
	require.NoError(t, err)
	assert.NotNil(t, repo.Get(task.ID))
	assert.NotContains(t, store.Data, domain.StoreKeyTasks)
}

func mustCreate(t *testing.T, repo *Repository, title string) *domain.Task {
	t.Helper()
	task, err := repo.Create(CreateInput{
		Title:    title,
		Category: domain.CategoryWork,
		Priority: domain.PriorityMedium,
	})
	require.NoError(t, err)
	return task
}

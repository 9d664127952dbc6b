// Package repository owns the in-memory task collection: CRUD, legacy
// migration, filtering and sorting, import/export, and the rolling stats
// record written on create/complete events. Persistence is delegated to
// the injected domain.Store; a failed write never rolls back an in-memory
// mutation, since the session's in-memory state is the source of truth.
package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/harutoki/focusdeck/internal/domain"
)

// Repository is the single owner of the task collection.
// Fields are ordered to minimize memory padding.
type Repository struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
	stats  *domain.RollingStats
	tasks  []*domain.Task
}

// New creates a Repository. Call Load before using it.
func New(store domain.Store, clock domain.Clock, logger domain.Logger) *Repository {
	return &Repository{
		store:  store,
		clock:  clock,
		logger: logger,
		stats:  domain.NewRollingStats(),
	}
}

// Load reads the task collection and the rolling stats record from the
// store and runs the legacy migration pass. Missing data is not an error;
// it yields an empty collection. Returns the number of migrated records.
func (r *Repository) Load() int {
	var tasks []*domain.Task
	r.store.Get(domain.StoreKeyTasks, &tasks)

	migrated := 0
	kept := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task == nil {
			continue
		}
		if r.migrateTask(task) {
			migrated++
		}
		kept = append(kept, task)
	}
	r.tasks = kept

	stats := domain.NewRollingStats()
	r.store.Get(domain.StoreKeyStats, stats)
	stats.Normalize()
	r.stats = stats

	if migrated > 0 {
		r.persistTasks()
		r.logf("task", "migrated %d legacy record(s)", migrated)
	}
	return migrated
}

// migrateTask upgrades a legacy record in place. The pass is idempotent:
// records that already carry an id, a valid priority and category, and a
// consistent completedAt are left untouched.
func (r *Repository) migrateTask(t *domain.Task) bool {
	changed := false
	if t.ID == "" {
		t.ID = NewID()
		changed = true
	}
	if !t.Priority.IsValid() {
		t.Priority = domain.DefaultPriority
		changed = true
	}
	if !t.Category.IsValid() {
		t.Category = domain.DefaultCategory
		changed = true
	}
	if !t.Status.IsValid() {
		t.Status = domain.StatusPending
		changed = true
	}
	if t.Created.IsZero() {
		t.Created = r.clock.Now()
		changed = true
	}
	// Repair the completedAt iff-invariant.
	if t.Status == domain.StatusCompleted && t.Completed == nil {
		completed := t.Created
		t.Completed = &completed
		changed = true
	}
	if t.Status != domain.StatusCompleted && t.Completed != nil {
		t.Completed = nil
		changed = true
	}
	return changed
}

// NewID generates a fresh opaque task identifier.
func NewID() string {
	return uuid.NewString()
}

// CreateInput contains the parameters for creating a task.
type CreateInput struct {
	Title       string
	Description string
	Deadline    string // YYYY-MM-DD, empty = no deadline
	Category    domain.Category
	Priority    domain.Priority
}

// Create constructs and appends a new pending task, persists the
// collection, and records the creation in the rolling stats record.
func (r *Repository) Create(in CreateInput) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if !in.Category.IsValid() {
		return nil, domain.ErrInvalidCategory
	}
	if !in.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}
	if err := domain.ValidateDeadline(in.Deadline); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	task := &domain.Task{
		ID:          NewID(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		Priority:    in.Priority,
		Deadline:    in.Deadline,
		Status:      domain.StatusPending,
		Created:     now,
	}

	r.tasks = append(r.tasks, task)
	r.persistTasks()

	r.stats.RecordCreated(now)
	r.persistStats()

	r.logf("task", "created %q", title)
	return task.Clone(), nil
}

// Update applies a partial patch to the task with the given id.
// A status transition into completed stamps completedAt and records the
// completion; a transition out of completed clears it.
func (r *Repository) Update(id string, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToPatch
	}

	task := r.find(id)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, domain.ErrEmptyTitle
		}
		patch.Title = &title
	}
	if patch.Category != nil && !patch.Category.IsValid() {
		return nil, domain.ErrInvalidCategory
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if patch.Deadline != nil {
		if err := domain.ValidateDeadline(*patch.Deadline); err != nil {
			return nil, err
		}
	}

	completedNow := false
	if patch.Status != nil && *patch.Status != task.Status {
		switch {
		case *patch.Status == domain.StatusCompleted:
			now := r.clock.Now()
			task.Completed = &now
			completedNow = true
		case task.Status == domain.StatusCompleted:
			task.Completed = nil
		}
		task.Status = *patch.Status
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Deadline != nil {
		task.Deadline = *patch.Deadline
	}

	r.persistTasks()

	if completedNow {
		r.stats.RecordCompleted(*task.Completed)
		r.persistStats()
		r.logf("task", "completed %q", task.Title)
	}

	return task.Clone(), nil
}

// Delete removes the task with the given id. Returns whether a removal
// occurred; the collection is persisted only if it did.
func (r *Repository) Delete(id string) bool {
	for i, task := range r.tasks {
		if task.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			r.persistTasks()
			r.logf("task", "deleted %q", task.Title)
			return true
		}
	}
	return false
}

// Get returns a copy of the task with the given id, or nil if absent.
func (r *Repository) Get(id string) *domain.Task {
	task := r.find(id)
	if task == nil {
		return nil
	}
	return task.Clone()
}

// All returns a defensive copy of the full collection in insertion order.
func (r *Repository) All() []*domain.Task {
	tasks := make([]*domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task.Clone())
	}
	return tasks
}

// Len returns the number of tasks in the collection.
func (r *Repository) Len() int {
	return len(r.tasks)
}

// BulkUpdate applies the patch to each id independently and returns the
// number of tasks updated. There is no partial-failure rollback.
func (r *Repository) BulkUpdate(ids []string, patch domain.TaskPatch) int {
	updated := 0
	for _, id := range ids {
		if _, err := r.Update(id, patch); err == nil {
			updated++
		}
	}
	return updated
}

// BulkDelete deletes each id independently and returns the number of
// tasks removed.
func (r *Repository) BulkDelete(ids []string) int {
	deleted := 0
	for _, id := range ids {
		if r.Delete(id) {
			deleted++
		}
	}
	return deleted
}

// ClearCompleted removes all completed tasks and returns the count
// removed. The collection is persisted only if anything was removed.
func (r *Repository) ClearCompleted() int {
	kept := r.tasks[:0]
	removed := 0
	for _, task := range r.tasks {
		if task.Status == domain.StatusCompleted {
			removed++
			continue
		}
		kept = append(kept, task)
	}
	if removed > 0 {
		r.tasks = kept
		r.persistTasks()
		r.logf("task", "cleared %d completed task(s)", removed)
	}
	return removed
}

// Stats returns a copy of the rolling stats record.
func (r *Repository) Stats() domain.RollingStats {
	stats := *r.stats
	stats.DailyStats = make(map[string]domain.DayCount, len(r.stats.DailyStats))
	for k, v := range r.stats.DailyStats {
		stats.DailyStats[k] = v
	}
	return stats
}

func (r *Repository) find(id string) *domain.Task {
	for _, task := range r.tasks {
		if task.ID == id {
			return task
		}
	}
	return nil
}

func (r *Repository) persistTasks() {
	if !r.store.Set(domain.StoreKeyTasks, r.tasks) && r.logger != nil {
		r.logger.Error("store", "persisting tasks failed; in-memory state kept")
	}
}

func (r *Repository) persistStats() {
	if !r.store.Set(domain.StoreKeyStats, r.stats) && r.logger != nil {
		r.logger.Error("store", "persisting stats failed; in-memory state kept")
	}
}

func (r *Repository) logf(category, format string, args ...any) {
	if r.logger == nil {
		return
	}
	r.logger.Info(category, fmt.Sprintf(format, args...))
}

package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harutoki/focusdeck/internal/domain"
)

// ExportVersion is the format version written into export payloads.
const ExportVersion = "1.0"

// ExportPayload is the durable export/import contract.
type ExportPayload struct {
	ExportDate time.Time     `json:"exportDate"`
	Version    string        `json:"version"`
	Tasks      []domain.Task `json:"tasks"`
}

// Export returns a snapshot of the full collection plus metadata.
func (r *Repository) Export() ExportPayload {
	tasks := make([]domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, *task.Clone())
	}
	return ExportPayload{
		Tasks:      tasks,
		ExportDate: r.clock.Now(),
		Version:    ExportVersion,
	}
}

// importPayload decodes an incoming payload; a nil Tasks field means the
// payload lacked a task sequence entirely.
type importPayload struct {
	Tasks *[]domain.Task `json:"tasks"`
}

// Import appends the tasks from a JSON export payload to the collection.
// Incoming ids are never trusted: every imported task gets a fresh id to
// avoid collisions with the live collection. Imported records go through
// the same migration pass as loaded ones. Returns the count imported.
func (r *Repository) Import(data []byte) (int, error) {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	if payload.Tasks == nil {
		return 0, domain.ErrInvalidFormat
	}

	imported := 0
	for i := range *payload.Tasks {
		task := (*payload.Tasks)[i]
		task.ID = NewID()
		r.migrateTask(&task)
		r.tasks = append(r.tasks, &task)
		imported++
	}

	if imported > 0 {
		r.persistTasks()
		r.logf("task", "imported %d task(s)", imported)
	}
	return imported, nil
}

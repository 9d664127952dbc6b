package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrNoFieldsToPatch = errors.New("no fields to update")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidSortMode = errors.New("invalid sort mode")
	ErrInvalidDeadline = errors.New("invalid deadline (expected YYYY-MM-DD)")
	ErrInvalidFormat   = errors.New("invalid import payload format")
	ErrEmptyFile       = errors.New("file is empty")
	ErrNoTasksInFile   = errors.New("no tasks found in file")
)

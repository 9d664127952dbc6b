package domain

import "time"

// Store keys used by the core.
const (
	StoreKeyTasks = "tasks"
	StoreKeyStats = "stats"
	StoreKeyTimer = "timer"
	StoreKeyTheme = "theme"
)

// Store is the persistence boundary: a key-value store of JSON-serializable
// blobs. Implementations must never panic on failure; a failed write yields
// false and the caller decides how to report it.
type Store interface {
	// Get decodes the value stored under key into v. Returns false if the
	// key is absent or undecodable, leaving v untouched as the default.
	Get(key string, v any) bool

	// Set stores v under key. Returns false on encode or write failure.
	Set(key string, v any) bool

	// Remove deletes the value stored under key, if any.
	Remove(key string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger records operational events. Implementations must be safe to call
// with a nil receiver guard at the call site, matching the repository's
// fire-and-forget logging policy.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

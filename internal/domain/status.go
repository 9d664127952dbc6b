package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not yet worked on
	StatusInProgress Status = "in-progress" // Actively worked on
	StatusCompleted  Status = "completed"   // Finished
	StatusSkipped    Status = "skipped"     // Abandoned without completion
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusSkipped}
}

// ParseStatus validates external input against the closed status set.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusSkipped:
		return true
	default:
		return false
	}
}

// IsTerminal returns true for states that end work on a task.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusSkipped:
		return "Skipped"
	default:
		return string(s)
	}
}

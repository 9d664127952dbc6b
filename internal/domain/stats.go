package domain

import "time"

// DayCount holds per-day activity counters inside the rolling record.
type DayCount struct {
	Completed int `json:"completed"`
	Created   int `json:"created"`
}

// RollingStats is the aggregate counter record maintained incrementally on
// task create/complete events. It is decoupled from the task collection:
// deleting tasks does not rewind these counters.
// Fields are ordered to minimize memory padding.
type RollingStats struct {
	DailyStats          map[string]DayCount `json:"dailyStats"`
	LastActiveDate      string              `json:"lastActiveDate"`
	TotalTasksCreated   int                 `json:"totalTasksCreated"`
	TotalTasksCompleted int                 `json:"totalTasksCompleted"`
	CurrentStreak       int                 `json:"currentStreak"`
	LongestStreak       int                 `json:"longestStreak"`
}

// NewRollingStats returns an empty rolling record.
func NewRollingStats() *RollingStats {
	return &RollingStats{DailyStats: make(map[string]DayCount)}
}

// Normalize repairs a record decoded from storage so that all maps are
// usable. Safe to call repeatedly.
func (r *RollingStats) Normalize() {
	if r.DailyStats == nil {
		r.DailyStats = make(map[string]DayCount)
	}
}

// RecordCreated registers a task creation on the given day.
func (r *RollingStats) RecordCreated(now time.Time) {
	r.Normalize()
	key := DayKey(now)
	day := r.DailyStats[key]
	day.Created++
	r.DailyStats[key] = day
	r.TotalTasksCreated++
	r.touch(now)
}

// RecordCompleted registers a task completion on the given day.
func (r *RollingStats) RecordCompleted(now time.Time) {
	r.Normalize()
	key := DayKey(now)
	day := r.DailyStats[key]
	day.Completed++
	r.DailyStats[key] = day
	r.TotalTasksCompleted++
	r.touch(now)
}

// touch advances the streak counters for activity on the given day:
// consecutive-day activity extends the streak, a gap of more than one day
// resets it, and same-day activity leaves it unchanged.
func (r *RollingStats) touch(now time.Time) {
	today := DayKey(now)
	switch {
	case r.LastActiveDate == "":
		r.CurrentStreak = 1
	case r.LastActiveDate == today:
		// Already counted today.
	default:
		last, err := ParseDayKey(r.LastActiveDate)
		if err != nil {
			r.CurrentStreak = 1
			break
		}
		if DaysBetween(last, StartOfDay(now)) == 1 {
			r.CurrentStreak++
		} else {
			r.CurrentStreak = 1
		}
	}
	if r.CurrentStreak > r.LongestStreak {
		r.LongestStreak = r.CurrentStreak
	}
	r.LastActiveDate = today
}

// Package stats derives dashboard analytics from the task collection and
// the rolling stats record. All derivations are read-only.
package stats

import (
	"math"

	"github.com/harutoki/focusdeck/internal/domain"
)

// streakLookbackDays bounds the backward walk of the derived streak.
const streakLookbackDays = 365

// TaskSource supplies the data the engine derives from.
type TaskSource interface {
	// All returns a copy of the full task collection.
	All() []*domain.Task

	// Stats returns a copy of the rolling stats record.
	Stats() domain.RollingStats
}

// Engine computes derived analytics on demand.
type Engine struct {
	source TaskSource
	clock  domain.Clock
}

// NewEngine creates an Engine reading from the given source.
func NewEngine(source TaskSource, clock domain.Clock) *Engine {
	return &Engine{source: source, clock: clock}
}

// Completion summarizes the collection by status.
type Completion struct {
	Total          int
	Completed      int
	Pending        int
	InProgress     int
	Skipped        int
	CompletionRate int // Rounded percentage; 0 for an empty collection
}

// Completion returns per-status counts and the completion rate.
func (e *Engine) Completion() Completion {
	var c Completion
	for _, task := range e.source.All() {
		c.Total++
		switch task.Status {
		case domain.StatusCompleted:
			c.Completed++
		case domain.StatusPending:
			c.Pending++
		case domain.StatusInProgress:
			c.InProgress++
		case domain.StatusSkipped:
			c.Skipped++
		}
	}
	if c.Total > 0 {
		c.CompletionRate = int(math.Round(100 * float64(c.Completed) / float64(c.Total)))
	}
	return c
}

// CategoryDistribution counts tasks per fixed category slot. Values
// outside the closed set cannot occur past the input boundary, so every
// task lands in exactly one slot.
func (e *Engine) CategoryDistribution() map[domain.Category]int {
	dist := make(map[domain.Category]int, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		dist[c] = 0
	}
	for _, task := range e.source.All() {
		if _, ok := dist[task.Category]; ok {
			dist[task.Category]++
		}
	}
	return dist
}

// DayBucket is one day of completed-task activity.
type DayBucket struct {
	Date  string // YYYY-MM-DD
	Label string // Three-letter weekday
	Count int    // Completed tasks that day
	Level int    // Bucketed intensity 0..4
}

// WeeklySeries returns completed-task counts for the last seven calendar
// days, oldest to newest, ending today.
func (e *Engine) WeeklySeries() []DayBucket {
	return e.DailyActivity(7)
}

// DailyActivity returns completed-task counts for the last n calendar
// days, oldest to newest, ending today, with bucketed intensity levels.
func (e *Engine) DailyActivity(n int) []DayBucket {
	if n <= 0 {
		return nil
	}

	counts := e.completionsByDay()
	today := domain.StartOfDay(e.clock.Now())
	buckets := make([]DayBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count := counts[domain.DayKey(day)]
		buckets = append(buckets, DayBucket{
			Date:  domain.DayKey(day),
			Label: domain.WeekdayLabel(day),
			Count: count,
			Level: activityLevel(count),
		})
	}
	return buckets
}

// activityLevel buckets a completed-task count into heatmap intensity.
func activityLevel(count int) int {
	switch {
	case count == 0:
		return 0
	case count == 1:
		return 1
	case count <= 3:
		return 2
	case count <= 5:
		return 3
	default:
		return 4
	}
}

// Streak walks backward from today counting consecutive days with at
// least one completed task. Today having no completions does not break
// the walk; a zero on any earlier day halts it. The lookback is bounded
// to a year.
func (e *Engine) Streak() int {
	counts := e.completionsByDay()
	today := domain.StartOfDay(e.clock.Now())

	streak := 0
	for i := 0; i < streakLookbackDays; i++ {
		day := today.AddDate(0, 0, -i)
		if counts[domain.DayKey(day)] > 0 {
			streak++
			continue
		}
		if i == 0 {
			continue // An empty today does not end the streak yet.
		}
		break
	}
	return streak
}

// RecordedStreaks returns the incrementally maintained current and
// longest streak from the rolling stats record. The longest streak has
// no derived counterpart: deleted tasks take their history with them.
func (e *Engine) RecordedStreaks() (current, longest int) {
	record := e.source.Stats()
	return record.CurrentStreak, record.LongestStreak
}

// completionsByDay buckets completed tasks by the calendar day of their
// completion timestamp.
func (e *Engine) completionsByDay() map[string]int {
	counts := make(map[string]int)
	for _, task := range e.source.All() {
		if task.Status != domain.StatusCompleted || task.Completed == nil {
			continue
		}
		counts[domain.DayKey(*task.Completed)]++
	}
	return counts
}

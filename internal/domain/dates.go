package domain

import "time"

// DayKeyLayout is the calendar-day bucket format used across the store,
// the rolling stats record, and task deadlines.
const DayKeyLayout = "2006-01-02"

// DayKey returns the calendar-day bucket key for t in local time.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD day key.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDeadline
	}
	return t, nil
}

// ValidateDeadline checks that s is a well-formed day key.
// The empty string is valid and means "no deadline".
func ValidateDeadline(s string) error {
	if s == "" {
		return nil
	}
	_, err := ParseDayKey(s)
	return err
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from a to b.
// The result is negative when b precedes a. Both dates are normalized to
// UTC midnights first, so days shortened or stretched by clock changes
// still count as one calendar day.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// WeekdayLabel returns the three-letter weekday label for a day.
func WeekdayLabel(t time.Time) string {
	return t.Weekday().String()[:3]
}

// Package period turns a named period token into a publication-time range.
package period

import "time"

// Recognized tokens.
const (
	Today     = "today"
	Yesterday = "yesterday"
	Last7Days = "last_7_days"
	LastWeek  = "last_week"
)

// Range bounds published_at inclusively. A nil bound is open.
type Range struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether the range applies no filtering.
func (r Range) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// Resolve maps token to a range relative to now, using now's location for
// calendar days. Unknown or empty tokens yield the zero Range, never an error.
func Resolve(token string, now time.Time) Range {
	today := startOfDay(now)
	switch token {
	case Today:
		return dayRange(today)
	case Yesterday:
		return dayRange(today.AddDate(0, 0, -1))
	case Last7Days:
		from := now.AddDate(0, 0, -7)
		return Range{From: &from}
	case LastWeek:
		// Monday = 0.
		weekday := (int(now.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -(weekday + 7))
		end := endOfDay(start.AddDate(0, 0, 6))
		return Range{From: &start, To: &end}
	default:
		return Range{}
	}
}

func dayRange(day time.Time) Range {
	end := endOfDay(day)
	return Range{From: &day, To: &end}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay keeps microsecond precision so PostgreSQL TIMESTAMPTZ comparisons match.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999000, t.Location())
}

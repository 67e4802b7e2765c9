// Package calendar provides UTC date-boundary arithmetic for calendar views.
// All computations use UTC calendar fields (year/month/day), never local
// time, so results are identical on every host regardless of locale or
// system timezone.
package calendar

import (
	"fmt"
	"time"
)

// View identifies the calendar view a date range is derived for.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
	ViewYear  View = "year"
)

// ParseView converts a view name into a View.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth, ViewYear:
		return View(s), nil
	default:
		return "", fmt.Errorf("invalid calendar view: %q (expected: day, week, month, year)", s)
	}
}

// Range is a closed interval of UTC instants. Start is always the first
// millisecond (00:00:00.000) of a UTC day and End the last millisecond
// (23:59:59.999) of a UTC day, with Start <= End.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// StartOfDay truncates t to 00:00:00.000 UTC of its UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999 UTC of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, time.UTC)
}

// AddDays adds n calendar days to t via field arithmetic. time.Date
// normalizes an out-of-range day-of-month by carrying into month and year,
// so month lengths and leap years are handled by the calendar itself.
func AddDays(t time.Time, n int) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// RangeForView derives the day-aligned UTC range the given view spans
// around the anchor instant.
//
//   - ViewDay: the anchor's calendar day.
//   - ViewWeek: Sunday through Saturday of the week containing the anchor.
//   - ViewMonth: first through last day of the anchor's month.
//   - ViewYear: Jan 1 through Dec 31 of the anchor's year.
func RangeForView(anchor time.Time, v View) (Range, error) {
	anchor = anchor.UTC()

	switch v {
	case ViewDay:
		return Range{Start: StartOfDay(anchor), End: EndOfDay(anchor)}, nil

	case ViewWeek:
		// time.Weekday numbers Sunday as 0, which is exactly the offset
		// back to the week start.
		weekStart := AddDays(StartOfDay(anchor), -int(anchor.Weekday()))
		return Range{Start: weekStart, End: EndOfDay(AddDays(weekStart, 6))}, nil

	case ViewMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		// Day 0 of the next month is the last day of this month.
		last := time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, time.UTC)
		return Range{Start: first, End: EndOfDay(last)}, nil

	case ViewYear:
		first := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		return Range{Start: first, End: EndOfDay(last)}, nil

	default:
		return Range{}, fmt.Errorf("invalid calendar view: %q", v)
	}
}

// Package estimator counts how many times a job's schedule fires within
// UTC calendar days and day-aligned ranges. It is pure computation for
// calendar display: nothing is executed, nothing is persisted, and every
// call is safe to run concurrently because no state outlives the call.
package estimator

import (
	"time"

	"github.com/aatumaykin/croncal/internal/calendar"
	"github.com/aatumaykin/croncal/internal/cronexpr"
	"github.com/aatumaykin/croncal/internal/job"
)

const minutesPerDay = 24 * 60

// RunsForDate counts the scheduled firings of j within the UTC calendar
// day containing date. Disabled jobs always count zero, as do non-positive
// "every" intervals; a malformed cron expression is returned as a
// *cronexpr.ParseError so callers can distinguish misconfiguration from a
// genuinely empty day.
func RunsForDate(j job.Job, date time.Time) (int, error) {
	if !j.Enabled {
		return 0, nil
	}

	expr, err := cronMatcher(j)
	if err != nil {
		return 0, err
	}
	return runsForDay(j, expr, date), nil
}

// RunsInRange sums RunsForDate over every UTC calendar day from the day
// containing start through the day containing end, inclusive. It expects
// day-aligned boundaries (calendar.RangeForView produces them) and does
// not re-align; it only walks whole days. The cron expression is parsed
// once for the whole range.
func RunsInRange(j job.Job, start, end time.Time) (int, error) {
	if !j.Enabled {
		return 0, nil
	}

	expr, err := cronMatcher(j)
	if err != nil {
		return 0, err
	}

	total := 0
	last := calendar.StartOfDay(end)
	for d := calendar.StartOfDay(start); !d.After(last); d = calendar.AddDays(d, 1) {
		total += runsForDay(j, expr, d)
	}
	return total, nil
}

// cronMatcher parses the job's cron expression, or returns nil for the
// other schedule kinds.
func cronMatcher(j job.Job) (*cronexpr.Expression, error) {
	if j.Schedule.Kind != job.KindCron {
		return nil, nil
	}
	return cronexpr.Parse(j.Schedule.Expr)
}

// runsForDay dispatches over the schedule kinds for a single day. expr is
// the pre-parsed cron matcher when the kind is cron.
func runsForDay(j job.Job, expr *cronexpr.Expression, date time.Time) int {
	dayStart := calendar.StartOfDay(date)
	dayEnd := calendar.EndOfDay(date)

	switch j.Schedule.Kind {
	case job.KindEvery:
		return intervalRuns(j, dayStart, dayEnd)

	case job.KindAt:
		at := time.UnixMilli(j.Schedule.AtMs).UTC()
		if at.Before(dayStart) || at.After(dayEnd) {
			return 0
		}
		return 1

	case job.KindCron:
		// Brute-force enumeration of the day's minute boundaries. 1,440
		// evaluations is cheap and obviously correct, unlike closed-form
		// next-occurrence arithmetic.
		count := 0
		for i, t := 0, dayStart; i < minutesPerDay; i, t = i+1, t.Add(time.Minute) {
			if expr.MatchesTime(t) {
				count++
			}
		}
		return count

	default:
		// Unknown kinds are inert; Validate rejects them up front.
		return 0
	}
}

// intervalRuns counts firings of an "every" schedule inside the closed
// [dayStart, dayEnd] window. Firings sit at ref + k*interval for every
// integer k, positive or negative, so the count is computed by aligning to
// the first firing at or after dayStart via integer division. Intervals
// can be sub-minute and a day can hold millions of firings, so iterating k
// is not an option.
//
// Without a reference instant the phase anchors to the queried day's start.
// That keeps per-day estimates deterministic but silently shifts the phase
// between query days; drift-free estimation needs an explicit anchor.
func intervalRuns(j job.Job, dayStart, dayEnd time.Time) int {
	interval := j.Schedule.EveryMs
	if interval <= 0 {
		return 0
	}

	startMs := dayStart.UnixMilli()
	endMs := dayEnd.UnixMilli()

	refMs := startMs
	if ref, ok := j.Reference(); ok {
		refMs = ref.UnixMilli()
	}

	// First firing at or after dayStart. Go's integer division truncates
	// toward zero, so the candidate can land one interval short when the
	// reference precedes the day.
	first := refMs + (startMs-refMs)/interval*interval
	if first < startMs {
		first += interval
	}

	if first > endMs {
		return 0
	}
	return int((endMs-first)/interval) + 1
}

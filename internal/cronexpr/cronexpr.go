// Package cronexpr parses five-field POSIX-style cron expressions and
// evaluates minute-granularity matches against UTC calendar fields.
//
// Field order is minute, hour, day-of-month, month, day-of-week
// (0 = Sunday). Each field accepts a comma-separated union of "*", an
// integer literal, an inclusive range "a-b", and steps "*/s" or "a-b/s".
// Matching implements the classic POSIX quirk: when both day-of-month and
// day-of-week are restricted, a day matches if either field matches.
package cronexpr

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseError describes why a cron expression was rejected. Field is empty
// when the expression as a whole is malformed (wrong field count).
type ParseError struct {
	Expr   string
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid cron expression %q: %s", e.Expr, e.Reason)
	}
	return fmt.Sprintf("invalid cron expression %q: %s field: %s", e.Expr, e.Field, e.Reason)
}

// fieldBounds describes the allowed integer range of one cron field.
type fieldBounds struct {
	name string
	min  int
	max  int
}

var cronFields = [5]fieldBounds{
	{name: "minute", min: 0, max: 59},
	{name: "hour", min: 0, max: 23},
	{name: "day-of-month", min: 1, max: 31},
	{name: "month", min: 1, max: 12},
	{name: "day-of-week", min: 0, max: 6},
}

// fieldSet is the parsed form of one field: a bitmask of allowed values
// (the largest field value is 59, so uint64 covers every field) plus a
// wildcard flag. The flag is true only when the raw field text is exactly
// "*"; an explicit list covering the whole range is still "restricted",
// which is what the day-of-month/day-of-week OR rule keys off.
type fieldSet struct {
	bits     uint64
	wildcard bool
}

func (f fieldSet) contains(v int) bool {
	return v >= 0 && v < 64 && f.bits&(1<<uint(v)) != 0
}

// Expression is a parsed cron expression ready for matching. It is
// immutable after Parse and safe for concurrent use.
type Expression struct {
	minute fieldSet
	hour   fieldSet
	dom    fieldSet
	month  fieldSet
	dow    fieldSet
}

// Parse parses a five-field cron expression. The returned error is always
// a *ParseError.
func Parse(expr string) (*Expression, error) {
	parts := strings.Fields(expr)
	if len(parts) != 5 {
		return nil, &ParseError{
			Expr:   expr,
			Reason: fmt.Sprintf("expected 5 fields, got %d", len(parts)),
		}
	}

	var sets [5]fieldSet
	for i, raw := range parts {
		set, perr := parseField(raw, cronFields[i])
		if perr != nil {
			perr.Expr = expr
			return nil, perr
		}
		sets[i] = set
	}

	return &Expression{
		minute: sets[0],
		hour:   sets[1],
		dom:    sets[2],
		month:  sets[3],
		dow:    sets[4],
	}, nil
}

// Matches reports whether the given UTC calendar fields satisfy the
// expression. Minute, hour and month are all required. The day constraint
// follows the POSIX rule: with both day fields restricted, day-of-month OR
// day-of-week may match; with one restricted, that field decides; with
// neither, any day matches.
func (e *Expression) Matches(minute, hour, dayOfMonth, month, dayOfWeek int) bool {
	if !e.minute.contains(minute) || !e.hour.contains(hour) || !e.month.contains(month) {
		return false
	}

	domRestricted := !e.dom.wildcard
	dowRestricted := !e.dow.wildcard
	switch {
	case domRestricted && dowRestricted:
		return e.dom.contains(dayOfMonth) || e.dow.contains(dayOfWeek)
	case domRestricted:
		return e.dom.contains(dayOfMonth)
	case dowRestricted:
		return e.dow.contains(dayOfWeek)
	default:
		return true
	}
}

// MatchesTime evaluates the expression at t using t's UTC calendar fields.
func (e *Expression) MatchesTime(t time.Time) bool {
	t = t.UTC()
	return e.Matches(t.Minute(), t.Hour(), t.Day(), int(t.Month()), int(t.Weekday()))
}

// parseField parses one comma-separated field into a fieldSet.
func parseField(raw string, bounds fieldBounds) (fieldSet, *ParseError) {
	if raw == "" {
		return fieldSet{}, &ParseError{Field: bounds.name, Reason: "empty field"}
	}

	set := fieldSet{wildcard: raw == "*"}
	for _, term := range strings.Split(raw, ",") {
		bits, perr := parseTerm(term, bounds)
		if perr != nil {
			return fieldSet{}, perr
		}
		set.bits |= bits
	}
	return set, nil
}

// parseTerm parses a single term of a field: "*", a literal, "a-b", or a
// step over "*" or "a-b".
func parseTerm(term string, bounds fieldBounds) (uint64, *ParseError) {
	if term == "" {
		return 0, &ParseError{Field: bounds.name, Reason: "empty term"}
	}

	base, stepText, hasStep := strings.Cut(term, "/")

	step := 1
	if hasStep {
		v, err := strconv.Atoi(stepText)
		if err != nil {
			return 0, &ParseError{Field: bounds.name, Reason: fmt.Sprintf("malformed step %q", stepText)}
		}
		if v <= 0 {
			return 0, &ParseError{Field: bounds.name, Reason: fmt.Sprintf("step must be positive, got %d", v)}
		}
		step = v
	}

	var lo, hi int
	switch {
	case base == "*":
		lo, hi = bounds.min, bounds.max

	case strings.Contains(base, "-"):
		loText, hiText, _ := strings.Cut(base, "-")
		var perr *ParseError
		if lo, perr = parseValue(loText, bounds); perr != nil {
			return 0, perr
		}
		if hi, perr = parseValue(hiText, bounds); perr != nil {
			return 0, perr
		}
		if lo > hi {
			return 0, &ParseError{Field: bounds.name, Reason: fmt.Sprintf("range %d-%d is inverted", lo, hi)}
		}

	default:
		if hasStep {
			// A step needs a range to walk: only "*/s" and "a-b/s" are valid.
			return 0, &ParseError{Field: bounds.name, Reason: fmt.Sprintf("step base %q must be \"*\" or a range", base)}
		}
		v, perr := parseValue(base, bounds)
		if perr != nil {
			return 0, perr
		}
		lo, hi = v, v
	}

	var bits uint64
	for v := lo; v <= hi; v += step {
		bits |= 1 << uint(v)
	}
	return bits, nil
}

// parseValue parses a bare integer and checks it against the field bounds.
func parseValue(text string, bounds fieldBounds) (int, *ParseError) {
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Field: bounds.name, Reason: fmt.Sprintf("malformed value %q", text)}
	}
	if v < bounds.min || v > bounds.max {
		return 0, &ParseError{
			Field:  bounds.name,
			Reason: fmt.Sprintf("value %d out of bounds [%d,%d]", v, bounds.min, bounds.max),
		}
	}
	return v, nil
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestStartOfDay(t *testing.T) {
	anchor := mustParse(t, "2026-03-15T17:42:13Z")
	got := StartOfDay(anchor)

	assert.Equal(t, mustParse(t, "2026-03-15T00:00:00Z"), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestStartOfDayNonUTCInput(t *testing.T) {
	// 2026-03-15 01:30 +05:00 is still 2026-03-14 in UTC.
	loc := time.FixedZone("plus5", 5*3600)
	anchor := time.Date(2026, time.March, 15, 1, 30, 0, 0, loc)

	got := StartOfDay(anchor)
	assert.Equal(t, mustParse(t, "2026-03-14T00:00:00Z"), got)
}

func TestEndOfDay(t *testing.T) {
	anchor := mustParse(t, "2026-03-15T00:00:00Z")
	got := EndOfDay(anchor)

	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 59, got.Second())
	assert.Equal(t, 999_000_000, got.Nanosecond())
	assert.Equal(t, anchor.Day(), got.Day())
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		days     int
		expected string
	}{
		{"simple", "2026-03-15T12:00:00Z", 3, "2026-03-18T12:00:00Z"},
		{"month carry", "2026-01-31T00:00:00Z", 1, "2026-02-01T00:00:00Z"},
		{"year carry", "2025-12-31T00:00:00Z", 1, "2026-01-01T00:00:00Z"},
		{"leap day", "2024-02-28T00:00:00Z", 1, "2024-02-29T00:00:00Z"},
		{"non leap day", "2026-02-28T00:00:00Z", 1, "2026-03-01T00:00:00Z"},
		{"negative", "2026-03-01T00:00:00Z", -1, "2026-02-28T00:00:00Z"},
		{"zero", "2026-03-15T06:00:00Z", 0, "2026-03-15T06:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddDays(mustParse(t, tt.start), tt.days)
			assert.Equal(t, mustParse(t, tt.expected), got)
		})
	}
}

func TestParseView(t *testing.T) {
	for _, valid := range []string{"day", "week", "month", "year"} {
		v, err := ParseView(valid)
		assert.NoError(t, err)
		assert.Equal(t, View(valid), v)
	}

	_, err := ParseView("fortnight")
	assert.Error(t, err)
}

func TestRangeForViewDay(t *testing.T) {
	r, err := RangeForView(mustParse(t, "2026-03-15T17:42:00Z"), ViewDay)
	require.NoError(t, err)

	assert.Equal(t, mustParse(t, "2026-03-15T00:00:00Z"), r.Start)
	assert.Equal(t, EndOfDay(r.Start), r.End)
}

func TestRangeForViewWeek(t *testing.T) {
	tests := []struct {
		name      string
		anchor    string
		weekStart string
	}{
		// 2026-03-15 is a Sunday.
		{"anchor on sunday", "2026-03-15T10:00:00Z", "2026-03-15T00:00:00Z"},
		{"anchor mid week", "2026-03-18T10:00:00Z", "2026-03-15T00:00:00Z"},
		// 2026-03-21 is a Saturday, last day of the same week.
		{"anchor on saturday", "2026-03-21T23:00:00Z", "2026-03-15T00:00:00Z"},
		// Week spanning a month boundary.
		{"week crosses month", "2026-04-01T00:00:00Z", "2026-03-29T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := RangeForView(mustParse(t, tt.anchor), ViewWeek)
			require.NoError(t, err)

			assert.Equal(t, mustParse(t, tt.weekStart), r.Start)
			assert.Equal(t, time.Sunday, r.Start.Weekday())
			assert.Equal(t, time.Saturday, r.End.Weekday())
			assert.Equal(t, EndOfDay(AddDays(r.Start, 6)), r.End)

			// The anchor's day must fall inside the week.
			anchor := mustParse(t, tt.anchor)
			assert.False(t, anchor.Before(r.Start))
			assert.False(t, anchor.After(r.End))
		})
	}
}

func TestRangeForViewMonth(t *testing.T) {
	tests := []struct {
		name    string
		anchor  string
		lastDay int
	}{
		{"31 day month", "2026-03-15T00:00:00Z", 31},
		{"30 day month", "2026-04-10T00:00:00Z", 30},
		{"february", "2026-02-14T00:00:00Z", 28},
		{"february leap year", "2024-02-14T00:00:00Z", 29},
		{"december", "2026-12-31T23:59:00Z", 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := mustParse(t, tt.anchor)
			r, err := RangeForView(anchor, ViewMonth)
			require.NoError(t, err)

			assert.Equal(t, 1, r.Start.Day())
			assert.Equal(t, anchor.Month(), r.Start.Month())
			assert.Equal(t, tt.lastDay, r.End.Day())
			assert.Equal(t, anchor.Month(), r.End.Month())
		})
	}
}

func TestRangeForViewYear(t *testing.T) {
	r, err := RangeForView(mustParse(t, "2026-07-04T12:00:00Z"), ViewYear)
	require.NoError(t, err)

	assert.Equal(t, mustParse(t, "2026-01-01T00:00:00Z"), r.Start)
	assert.Equal(t, EndOfDay(mustParse(t, "2026-12-31T00:00:00Z")), r.End)
}

func TestRangeForViewInvalid(t *testing.T) {
	_, err := RangeForView(time.Now(), View("decade"))
	assert.Error(t, err)
}

func TestRangeAlwaysDayAligned(t *testing.T) {
	anchor := mustParse(t, "2026-03-15T17:42:13Z")

	for _, v := range []View{ViewDay, ViewWeek, ViewMonth, ViewYear} {
		r, err := RangeForView(anchor, v)
		require.NoError(t, err)

		assert.Equal(t, StartOfDay(r.Start), r.Start, "view %s start not day-aligned", v)
		assert.Equal(t, EndOfDay(r.End), r.End, "view %s end not day-aligned", v)
		assert.False(t, r.End.Before(r.Start), "view %s range inverted", v)
	}
}

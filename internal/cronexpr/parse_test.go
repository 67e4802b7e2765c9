package cronexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidExpressions(t *testing.T) {
	valid := []string{
		"* * * * *",
		"0 0 * * *",
		"13,43 * * * *",
		"*/15 * * * *",
		"0-29/10 * * * *",
		"0 9 1 * 1",
		"59 23 31 12 6",
		"0 0 1,15 * 0,6",
		"0 6-18 * * 1-5",
		"30 */2 * * *",
	}

	for _, expr := range valid {
		t.Run(expr, func(t *testing.T) {
			parsed, err := Parse(expr)
			assert.NoError(t, err)
			assert.NotNil(t, parsed)
		})
	}
}

func TestParseInvalidExpressions(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"too few fields", "* * * *"},
		{"too many fields", "* * * * * *"},
		{"minute out of bounds", "60 * * * *"},
		{"hour out of bounds", "* 24 * * *"},
		{"dom zero", "* * 0 * *"},
		{"dom out of bounds", "* * 32 * *"},
		{"month zero", "* * * 0 *"},
		{"month out of bounds", "* * * 13 *"},
		{"dow out of bounds", "* * * * 7"},
		{"negative value", "-1 * * * *"},
		{"inverted range", "30-10 * * * *"},
		{"zero step", "*/0 * * * *"},
		{"negative step", "*/-5 * * * *"},
		{"malformed step", "*/x * * * *"},
		{"step on literal base", "5/15 * * * *"},
		{"garbage value", "abc * * * *"},
		{"trailing comma", "1, * * * *"},
		{"range out of bounds", "* * * * 5-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr)
			require.Error(t, err)

			var perr *ParseError
			assert.True(t, errors.As(err, &perr), "error must be a *ParseError, got %T", err)
		})
	}
}

func TestParseErrorNamesField(t *testing.T) {
	_, err := Parse("* * * 13 *")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "month", perr.Field)
	assert.Contains(t, perr.Error(), "month")
	assert.Contains(t, perr.Error(), "* * * 13 *")
}

func TestParseWildcardFlag(t *testing.T) {
	// A literal "*" is unrestricted; an explicit full-range list is not.
	// The distinction drives the day-of-month/day-of-week OR rule.
	star, err := Parse("* * * * *")
	require.NoError(t, err)
	assert.True(t, star.dom.wildcard)
	assert.True(t, star.dow.wildcard)

	fullList, err := Parse("* * 1-31 * 0-6")
	require.NoError(t, err)
	assert.False(t, fullList.dom.wildcard)
	assert.False(t, fullList.dow.wildcard)

	steppedStar, err := Parse("*/5 * * * */2")
	require.NoError(t, err)
	assert.False(t, steppedStar.minute.wildcard)
	assert.False(t, steppedStar.dow.wildcard)
}

func TestParseFieldSets(t *testing.T) {
	parsed, err := Parse("13,43 0-5 */10 6 1-5/2")
	require.NoError(t, err)

	for minute := 0; minute <= 59; minute++ {
		want := minute == 13 || minute == 43
		assert.Equal(t, want, parsed.minute.contains(minute), "minute %d", minute)
	}

	for hour := 0; hour <= 23; hour++ {
		assert.Equal(t, hour <= 5, parsed.hour.contains(hour), "hour %d", hour)
	}

	// */10 over day-of-month starts at the field minimum, 1.
	for dom := 1; dom <= 31; dom++ {
		want := (dom-1)%10 == 0
		assert.Equal(t, want, parsed.dom.contains(dom), "dom %d", dom)
	}

	for month := 1; month <= 12; month++ {
		assert.Equal(t, month == 6, parsed.month.contains(month), "month %d", month)
	}

	// 1-5/2 is Monday, Wednesday, Friday.
	for dow := 0; dow <= 6; dow++ {
		want := dow == 1 || dow == 3 || dow == 5
		assert.Equal(t, want, parsed.dow.contains(dow), "dow %d", dow)
	}
}

func TestParseStepStopsAtRangeMax(t *testing.T) {
	// 50-59/6 matches 50 and 56 only; the next step lands past 59.
	parsed, err := Parse("50-59/6 * * * *")
	require.NoError(t, err)

	for minute := 0; minute <= 59; minute++ {
		want := minute == 50 || minute == 56
		assert.Equal(t, want, parsed.minute.contains(minute), "minute %d", minute)
	}
}

package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDecimalHours(t *testing.T) {
	assert.Equal(t, 0.0, ToDecimalHours(""))
	assert.Equal(t, 9.0, ToDecimalHours("09:00"))
	assert.Equal(t, 9.5, ToDecimalHours("09:30"))
	assert.Equal(t, 0.25, ToDecimalHours("00:15"))
	assert.Equal(t, 23.0+59.0/60, ToDecimalHours("23:59"))
}

func TestToDecimalHoursUnparseableYieldsZero(t *testing.T) {
	for _, input := range []string{"9", "nine:00", "09:xx", "09:00:00", ":", "9h30"} {
		assert.Equal(t, 0.0, ToDecimalHours(input), "input %q", input)
	}
}

func TestToTimeString(t *testing.T) {
	assert.Equal(t, "00:00", ToTimeString(0))
	assert.Equal(t, "07:00", ToTimeString(7))
	assert.Equal(t, "07:30", ToTimeString(7.5))
	assert.Equal(t, "00:15", ToTimeString(0.25))
}

func TestToTimeStringCarriesMinuteOverflow(t *testing.T) {
	// Naive rounding would produce "01:60" here.
	assert.Equal(t, "02:00", ToTimeString(1.9999999))
	assert.Equal(t, "24:00", ToTimeString(23.9999999))
}

func TestRoundTripValidTimes(t *testing.T) {
	for _, s := range []string{"00:01", "06:45", "09:00", "12:30", "17:59", "23:59"} {
		assert.Equal(t, s, ToTimeString(ToDecimalHours(s)), "round trip %q", s)
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 3.0, Duration("09:00", "12:00"))
	assert.Equal(t, 4.25, Duration("13:00", "17:15"))
}

func TestDurationNeverNegative(t *testing.T) {
	cases := []struct{ start, end string }{
		{"", ""},
		{"09:00", ""},
		{"", "12:00"},
		{"12:00", "09:00"}, // end before start
		{"09:00", "09:00"}, // zero span
		{"22:00", "06:00"}, // overnight not supported
	}
	for _, tc := range cases {
		assert.Equal(t, 0.0, Duration(tc.start, tc.end), "duration(%q, %q)", tc.start, tc.end)
	}
}

func TestIsValidTimeFormat(t *testing.T) {
	valid := []string{"", "00:00", "9:30", "09:30", "19:59", "23:59"}
	for _, s := range valid {
		assert.True(t, IsValidTimeFormat(s), "expected %q valid", s)
	}

	invalid := []string{"24:00", "12:60", "9", "9:5", "ab:cd", "009:30", "12:300"}
	for _, s := range invalid {
		assert.False(t, IsValidTimeFormat(s), "expected %q invalid", s)
	}
}

func TestFormatDisplayHours(t *testing.T) {
	assert.Equal(t, "0h", FormatDisplayHours(0))
	assert.Equal(t, "7h", FormatDisplayHours(7))
	assert.Equal(t, "7h30", FormatDisplayHours(7.5))
	assert.Equal(t, "0h15", FormatDisplayHours(0.25))
	assert.Equal(t, "2h", FormatDisplayHours(1.9999999))
}

package timesheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var timeFormatRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ToDecimalHours converts an "HH:MM" string to decimal hours.
// Empty or unparseable input yields 0 so a bad field never corrupts an
// aggregate beyond contributing nothing.
func ToDecimalHours(s string) float64 {
	if s == "" {
		return 0
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return float64(hours) + float64(minutes)/60
}

// ToTimeString converts decimal hours to "HH:MM". Zero and NaN render
// as "00:00". Minute rounding that lands on 60 carries into the hour,
// so 1.9999 renders as "02:00" rather than "01:60".
func ToTimeString(d float64) string {
	if d == 0 || math.IsNaN(d) {
		return "00:00"
	}
	hours := int(math.Floor(d))
	minutes := int(math.Round((d - math.Floor(d)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Duration returns the span between two "HH:MM" times in decimal hours.
// Returns 0 when either end is empty or the span is non-positive;
// overnight spans are not supported.
func Duration(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}
	s := ToDecimalHours(start)
	e := ToDecimalHours(end)
	if e <= s {
		return 0
	}
	return e - s
}

// IsValidTimeFormat reports whether s is a well-formed "HH:MM" between
// 00:00 and 23:59. The empty string is valid: absence of input is not a
// format error.
func IsValidTimeFormat(s string) bool {
	if s == "" {
		return true
	}
	return timeFormatRe.MatchString(s)
}

// FormatDisplayHours renders decimal hours for on-screen display:
// "0h", "7h", "7h30".
func FormatDisplayHours(d float64) string {
	if d == 0 {
		return "0h"
	}
	hours := int(math.Floor(d))
	minutes := int(math.Round((d - math.Floor(d)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%02d", hours, minutes)
}

package models

import "time"

// DayOfWeek defines the days of the week for timesheet entries.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// weekdaysMondayFirst indexes the week Monday-first (ISO convention).
var weekdaysMondayFirst = [7]DayOfWeek{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

var dayOfWeekLabels = map[DayOfWeek]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DayOfWeekForDate maps a date to its weekday with Monday as index 0.
func DayOfWeekForDate(t time.Time) DayOfWeek {
	idx := (int(t.Weekday()) + 6) % 7
	return weekdaysMondayFirst[idx]
}

// Label returns the display name of the weekday.
func (d DayOfWeek) Label() string {
	return dayOfWeekLabels[d]
}

// IsWorkingDay reports whether the weekday counts toward the weekly quota.
// Weekend hours still count in a week's total, but never in threshold math.
func (d DayOfWeek) IsWorkingDay() bool {
	return d != Saturday && d != Sunday
}

// IntervalPart identifies one of the two work sessions of a day.
type IntervalPart string

const (
	MorningPart   IntervalPart = "morning"
	AfternoonPart IntervalPart = "afternoon"
)

// IntervalBound identifies one end of a work interval.
type IntervalBound string

const (
	StartBound IntervalBound = "start"
	EndBound   IntervalBound = "end"
)

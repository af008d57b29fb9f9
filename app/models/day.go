package models

import "time"

// Interval represents one work session (morning or afternoon) as a pair
// of "HH:MM" wall-clock strings. Either end may be empty while the user
// is still filling the day in.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IsEmpty reports whether neither end of the interval is set.
func (i Interval) IsEmpty() bool {
	return i.Start == "" && i.End == ""
}

// Clear empties both ends of the interval.
func (i *Interval) Clear() {
	i.Start = ""
	i.End = ""
}

// Day is one calendar day's timesheet entry.
// Invariant: when Absence is true, both intervals are cleared and
// WorkedHours is 0; otherwise WorkedHours is the sum of the two interval
// durations. WorkedHours is always derived, never set independently.
type Day struct {
	Date        string    `json:"date"` // ISO "YYYY-MM-DD"
	Weekday     DayOfWeek `json:"weekday"`
	Absence     bool      `json:"absence"`
	AbsenceType string    `json:"absence_type"`
	Morning     Interval  `json:"morning"`
	Afternoon   Interval  `json:"afternoon"`
	WorkedHours float64   `json:"worked_hours"`
	Comment     string    `json:"comment"`
}

// NewDay builds an empty entry for the given date.
func NewDay(date time.Time) Day {
	return Day{
		Date:    date.Format("2006-01-02"),
		Weekday: DayOfWeekForDate(date),
	}
}

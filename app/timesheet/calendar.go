package timesheet

import (
	"time"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
)

// BuildDays produces one empty Day per calendar date in [start, end].
func BuildDays(start, end time.Time) []models.Day {
	var days []models.Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, models.NewDay(d))
	}
	return days
}

// startOfWeek returns the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// GenerateWeeks partitions a month into Monday-start calendar weeks,
// trims each week to the days inside the target month and discards any
// week left empty. Weeks are ordered by start date ascending. Invalid
// input yields no weeks rather than an error.
func GenerateWeeks(year, month int) []models.Week {
	if year <= 0 || month < 1 || month > 12 {
		return nil
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	var weeks []models.Week
	for weekStart := startOfWeek(firstDay); !weekStart.After(lastDay); weekStart = weekStart.AddDate(0, 0, 7) {
		weekEnd := weekStart.AddDate(0, 0, 6)
		days := BuildDays(weekStart, weekEnd)

		// Keep only the days that belong to the selected month.
		inMonth := days[:0]
		for _, day := range days {
			date, err := time.Parse("2006-01-02", day.Date)
			if err != nil {
				continue
			}
			if date.Year() == year && int(date.Month()) == month {
				inMonth = append(inMonth, day)
			}
		}
		if len(inMonth) == 0 {
			continue
		}

		_, isoWeek := weekStart.ISOWeek()
		weeks = append(weeks, models.Week{
			Number:    isoWeek,
			StartDate: inMonth[0].Date,
			EndDate:   inMonth[len(inMonth)-1].Date,
			Days:      inMonth,
		})
	}
	return weeks
}

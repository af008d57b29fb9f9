package timesheet

import (
	"math"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
)

const standardWorkingDays = 5

// RecomputeDay re-derives a day's worked hours from its intervals and
// enforces the absence invariant: an absent day has cleared intervals
// and zero worked hours.
func RecomputeDay(day *models.Day) {
	if day.Absence {
		day.Morning.Clear()
		day.Afternoon.Clear()
		day.WorkedHours = 0
		return
	}
	day.WorkedHours = Duration(day.Morning.Start, day.Morning.End) +
		Duration(day.Afternoon.Start, day.Afternoon.End)
}

// ComputeWeekResult classifies a week's hours into the overtime
// waterfall: quota hours, then misc hours at 0% premium, then the 25%
// band, then the 50% band, each filled before the next begins. For a
// week with fewer than five working days both named thresholds shrink
// proportionally, mirroring how the legal boundaries themselves move
// for short weeks.
func ComputeWeekResult(days []models.Day, cfg models.SalaryConfig) models.WeekResult {
	workingDays := 0
	excludedDays := 0
	for _, day := range days {
		if !day.Weekday.IsWorkingDay() {
			continue
		}
		workingDays++
		if day.Absence {
			if t, ok := models.AbsenceTypeByID(day.AbsenceType); ok && t.ExcludedFromQuota {
				excludedDays++
			}
		}
	}

	// The quota below which hours are neither misc nor overtime.
	adjustedThreshold := float64(workingDays-excludedDays) * cfg.ContractualHoursPerDay

	// Weekend hours count in the total even though weekends never enter
	// the threshold math.
	total := 0.0
	for _, day := range days {
		total += day.WorkedHours
	}

	weeklyThreshold := cfg.WeeklyThreshold
	secondThreshold := cfg.SecondOvertimeThreshold
	if workingDays < standardWorkingDays {
		fraction := float64(workingDays) / standardWorkingDays
		weeklyThreshold = fraction * cfg.WeeklyThreshold
		secondThreshold = fraction * cfg.SecondOvertimeThreshold
	}

	result := models.WeekResult{
		TotalWorkedHours:  total,
		AdjustedThreshold: adjustedThreshold,
	}

	switch {
	case total <= adjustedThreshold:
		// Everything fits inside the quota.
	case total <= weeklyThreshold:
		result.MiscHours = total - adjustedThreshold
	default:
		result.MiscHours = math.Max(0, weeklyThreshold-adjustedThreshold)
		excessAboveWeekly := total - weeklyThreshold
		maxOvertime25 := secondThreshold - weeklyThreshold
		result.Overtime25Hours = math.Min(excessAboveWeekly, maxOvertime25)
		result.Overtime50Hours = math.Max(0, excessAboveWeekly-maxOvertime25)
	}
	return result
}

// ComputeMonthResult sums the four result fields across a month's
// weeks. Each week already carries its own proration.
func ComputeMonthResult(weeks []models.Week) models.MonthResult {
	var result models.MonthResult
	for _, week := range weeks {
		result.TotalWorkedHours += week.Result.TotalWorkedHours
		result.MiscHours += week.Result.MiscHours
		result.Overtime25Hours += week.Result.Overtime25Hours
		result.Overtime50Hours += week.Result.Overtime50Hours
	}
	return result
}

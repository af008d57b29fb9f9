package dashboard

import (
	"github.com/AmauryLAPEYRE/TimeTrack/app/routes/session"
	engine "github.com/AmauryLAPEYRE/TimeTrack/app/timesheet"
	"github.com/gofiber/fiber/v2"
)

// DashboardPageHandler renders the summary view.
func DashboardPageHandler(c *fiber.Ctx) error {
	return c.Render("dashboard", fiber.Map{
		"Title":       "Dashboard - TimeTrack",
		"CurrentPage": "dashboard",
	})
}

// GetSummaryAPI returns everything the dashboard widgets need: the
// active week's result and per-day hours for the chart, the monthly
// totals and the quota progress.
func GetSummaryAPI(c *fiber.Ctx) error {
	s := session.FromCtx(c)

	week, err := s.CurrentWeek()
	if err != nil {
		return c.JSON(fiber.Map{
			"has_month":    false,
			"month_result": s.MonthResult(),
		})
	}

	type dayHours struct {
		Date         string  `json:"date"`
		Weekday      string  `json:"weekday"`
		WorkedHours  float64 `json:"worked_hours"`
		DisplayHours string  `json:"display_hours"`
		Absence      bool    `json:"absence"`
	}
	chart := make([]dayHours, 0, len(week.Days))
	for _, day := range week.Days {
		chart = append(chart, dayHours{
			Date:         day.Date,
			Weekday:      day.Weekday.Label(),
			WorkedHours:  day.WorkedHours,
			DisplayHours: engine.FormatDisplayHours(day.WorkedHours),
			Absence:      day.Absence,
		})
	}

	return c.JSON(fiber.Map{
		"has_month":     true,
		"year":          s.Year(),
		"month":         s.Month(),
		"week":          week,
		"active_week":   s.ActiveWeek(),
		"week_count":    s.WeekCount(),
		"quota_percent": s.QuotaPercent(),
		"chart":         chart,
		"month_result":  s.MonthResult(),
	})
}

package timesheet

import (
	"errors"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
	"github.com/AmauryLAPEYRE/TimeTrack/app/routes/session"
	engine "github.com/AmauryLAPEYRE/TimeTrack/app/timesheet"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TimesheetPageHandler renders the week entry grid.
func TimesheetPageHandler(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	return c.Render("timesheet", fiber.Map{
		"Title":        "Timesheet - TimeTrack",
		"CurrentPage":  "timesheet",
		"HasMonth":     s.WeekCount() > 0,
		"AbsenceTypes": models.AbsenceTypes,
	})
}

func GenerateMonthAPI(c *fiber.Ctx) error {
	type MonthRequest struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}

	var req MonthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	s := session.FromCtx(c)
	weeks := s.GenerateMonth(req.Year, req.Month)
	logrus.Infof("Generated %d weeks for %04d-%02d", len(weeks), req.Year, req.Month)

	return c.JSON(fiber.Map{
		"weeks":        weeks,
		"active_week":  s.ActiveWeek(),
		"month_result": s.MonthResult(),
	})
}

func GetWeeksAPI(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	return c.JSON(fiber.Map{
		"year":         s.Year(),
		"month":        s.Month(),
		"weeks":        s.Weeks(),
		"active_week":  s.ActiveWeek(),
		"month_result": s.MonthResult(),
	})
}

func SetActiveWeekAPI(c *fiber.Ctx) error {
	type ActiveWeekRequest struct {
		Index int `json:"index"`
	}

	var req ActiveWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	s := session.FromCtx(c)
	if err := s.SetActiveWeek(req.Index); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Week index out of range"})
	}

	week, _ := s.CurrentWeek()
	return c.JSON(fiber.Map{"active_week": s.ActiveWeek(), "week": week})
}

func EditDayAPI(c *fiber.Ctx) error {
	type EditRequest struct {
		Field string `json:"field"`
		Value any    `json:"value"`
	}

	weekIndex, err := c.ParamsInt("weekIndex")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid week index"})
	}
	dayIndex, err := c.ParamsInt("dayIndex")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid day index"})
	}

	var req EditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	op, err := engine.ParseEditOp(req.Field, req.Value)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Time fields get a format check at this boundary; the engine itself
	// degrades bad strings to zero hours rather than rejecting them.
	if iv, ok := op.(engine.SetIntervalField); ok && !engine.IsValidTimeFormat(iv.Value) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid time format. Use HH:MM"})
	}

	s := session.FromCtx(c)
	if err := s.EditDay(weekIndex, dayIndex, op); err != nil {
		switch {
		case errors.Is(err, engine.ErrWeekOutOfRange), errors.Is(err, engine.ErrDayOutOfRange):
			logrus.Warnf("Rejected day edit week=%d day=%d: %v", weekIndex, dayIndex, err)
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	week, _ := s.Week(weekIndex)
	return c.JSON(fiber.Map{
		"day":          week.Days[dayIndex],
		"result":       week.Result,
		"month_result": s.MonthResult(),
	})
}

// ValidateTimeAPI backs live validation in the entry form widgets.
func ValidateTimeAPI(c *fiber.Ctx) error {
	value := c.Query("value")
	return c.JSON(fiber.Map{
		"value": value,
		"valid": engine.IsValidTimeFormat(value),
	})
}

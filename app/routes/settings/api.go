package settings

import (
	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
	"github.com/AmauryLAPEYRE/TimeTrack/app/routes/session"
	"github.com/gofiber/fiber/v2"
)

// SettingsPageHandler renders the salary settings and month selection form.
func SettingsPageHandler(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	return c.Render("settings", fiber.Map{
		"Title":       "Settings - TimeTrack",
		"CurrentPage": "settings",
		"Salary":      s.Config(),
	})
}

func GetSalaryConfigAPI(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	return c.JSON(fiber.Map{"salary": s.Config()})
}

// UpdateSalaryConfigAPI replaces the session's salary settings and
// re-aggregates every generated week against the new thresholds.
func UpdateSalaryConfigAPI(c *fiber.Ctx) error {
	var cfg models.SalaryConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if cfg.ContractualHoursPerDay < 0 || cfg.WeeklyThreshold < 0 || cfg.SecondOvertimeThreshold < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Hour thresholds cannot be negative"})
	}
	if cfg.SecondOvertimeThreshold < cfg.WeeklyThreshold {
		return c.Status(400).JSON(fiber.Map{"error": "Second overtime threshold must be at least the weekly threshold"})
	}

	s := session.FromCtx(c)
	s.SetConfig(cfg)
	return c.JSON(fiber.Map{
		"salary":       s.Config(),
		"month_result": s.MonthResult(),
	})
}

func GetAbsenceTypesAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"absence_types": models.AbsenceTypes})
}

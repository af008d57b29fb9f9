package export

import (
	"time"

	workbook "github.com/AmauryLAPEYRE/TimeTrack/app/export"
	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
	"github.com/AmauryLAPEYRE/TimeTrack/app/routes/session"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportWeekAPI streams the active week as an xlsx workbook.
func ExportWeekAPI(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	week, err := s.CurrentWeek()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No month generated yet"})
	}

	cfg := s.Config()
	f, err := workbook.WriteWorkbook([]models.Week{week}, cfg, false, "")
	if err != nil {
		logrus.WithError(err).Error("Failed to build week workbook")
		return c.Status(500).JSON(fiber.Map{"error": "Export failed, please retry"})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment(workbook.Filename(cfg, false, "", week.Number))
	if err := f.Write(c.Response().BodyWriter()); err != nil {
		logrus.WithError(err).Error("Failed to write week workbook")
		return c.Status(500).JSON(fiber.Map{"error": "Export failed, please retry"})
	}
	return nil
}

// ExportMonthAPI streams the whole month, one sheet per week plus the
// monthly recap sheet.
func ExportMonthAPI(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	weeks := s.Weeks()
	if len(weeks) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No month generated yet"})
	}

	cfg := s.Config()
	monthName := time.Month(s.Month()).String()
	f, err := workbook.WriteWorkbook(weeks, cfg, true, monthName)
	if err != nil {
		logrus.WithError(err).Error("Failed to build month workbook")
		return c.Status(500).JSON(fiber.Map{"error": "Export failed, please retry"})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment(workbook.Filename(cfg, true, monthName, 0))
	if err := f.Write(c.Response().BodyWriter()); err != nil {
		logrus.WithError(err).Error("Failed to write month workbook")
		return c.Status(500).JSON(fiber.Map{"error": "Export failed, please retry"})
	}
	return nil
}

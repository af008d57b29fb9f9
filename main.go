package main

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/AmauryLAPEYRE/TimeTrack/app/config"
	"github.com/AmauryLAPEYRE/TimeTrack/app/routes/dashboard"
	exportroutes "github.com/AmauryLAPEYRE/TimeTrack/app/routes/export"
	"github.com/AmauryLAPEYRE/TimeTrack/app/routes/session"
	"github.com/AmauryLAPEYRE/TimeTrack/app/routes/settings"
	timesheetroutes "github.com/AmauryLAPEYRE/TimeTrack/app/routes/timesheet"
	"github.com/AmauryLAPEYRE/TimeTrack/app/timesheet"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"
)

// customErrorHandler keeps /api errors as JSON and renders an error
// page for everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - TimeTrack",
		"CurrentPage":  "",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	cfg := config.Get()

	// Week boundaries and month trimming follow the configured zone.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logrus.Warnf("Failed to load timezone %s, using UTC: %v", cfg.Timezone, err)
		time.Local = time.UTC
	} else {
		time.Local = loc
	}

	// Template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	registry := timesheet.NewRegistry(cfg.DefaultSalary)
	app.Use(session.Middleware(registry))

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	dashboard.SetupDashboardRoutes(app)
	timesheetroutes.SetupTimesheetRoutes(app)
	settings.SetupSettingsRoutes(app)
	exportroutes.SetupExportRoutes(app)

	logrus.Infof("TimeTrack listening on %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		logrus.Fatal("Server stopped:", err)
	}
}

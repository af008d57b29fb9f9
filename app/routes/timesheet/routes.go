package timesheet

import (
	"github.com/gofiber/fiber/v2"
)

// SetupTimesheetRoutes registers the timesheet page and its APIs.
func SetupTimesheetRoutes(app *fiber.App) {
	app.Get("/timesheet", TimesheetPageHandler)

	api := app.Group("/api/timesheet")
	api.Post("/month", GenerateMonthAPI)
	api.Get("/weeks", GetWeeksAPI)
	api.Put("/active-week", SetActiveWeekAPI)
	api.Put("/weeks/:weekIndex/days/:dayIndex", EditDayAPI)
	api.Get("/validate-time", ValidateTimeAPI)
}

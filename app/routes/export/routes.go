package export

import (
	"github.com/gofiber/fiber/v2"
)

// SetupExportRoutes registers the spreadsheet download endpoints.
func SetupExportRoutes(app *fiber.App) {
	api := app.Group("/api/export")
	api.Get("/week", ExportWeekAPI)
	api.Get("/month", ExportMonthAPI)
}

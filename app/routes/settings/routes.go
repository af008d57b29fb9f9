package settings

import (
	"github.com/gofiber/fiber/v2"
)

// SetupSettingsRoutes registers the settings page and salary APIs.
func SetupSettingsRoutes(app *fiber.App) {
	app.Get("/settings", SettingsPageHandler)

	api := app.Group("/api/settings")
	api.Get("/salary", GetSalaryConfigAPI)
	api.Put("/salary", UpdateSalaryConfigAPI)
	api.Get("/absence-types", GetAbsenceTypesAPI)
}

package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes registers the dashboard page and summary API.
func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", DashboardPageHandler)
	app.Get("/api/dashboard/summary", GetSummaryAPI)
}

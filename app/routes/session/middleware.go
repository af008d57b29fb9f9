package session

import (
	"github.com/AmauryLAPEYRE/TimeTrack/app/timesheet"
	"github.com/gofiber/fiber/v2"
)

// CookieName carries the opaque per-browser session id.
const CookieName = "timetrack_session"

const localsKey = "session"

// Middleware resolves the caller's timesheet session from the cookie,
// creating one on first contact, and stores it in the request locals.
func Middleware(registry *timesheet.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current := c.Cookies(CookieName)
		id, s := registry.Get(current)
		if id != current {
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    id,
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Locals(localsKey, s)
		return c.Next()
	}
}

// FromCtx returns the session attached by Middleware.
func FromCtx(c *fiber.Ctx) *timesheet.Session {
	return c.Locals(localsKey).(*timesheet.Session)
}

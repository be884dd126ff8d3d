package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "sudsshop/internal/log"
)

// RequireAdmin gates the admin routes on the session guard flag.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sess(c)
		if s == nil || !s.IsAdmin() {
			applog.Security(c, "access.denied.admin", nil)
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

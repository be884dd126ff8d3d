package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sudsshop/internal/store"
)

// AttachSession ensures the sid cookie exists and parks the session state in
// Locals for the handlers and the render helper.
func AttachSession(sessions *store.Sessions, botUsername string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     "sid",
				Value:    sid,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Secure:   false, // enable true behind TLS
			})
		}
		c.Locals("sess", sessions.Get(sid))
		c.Locals("bot", botUsername)
		return c.Next()
	}
}

func sess(c *fiber.Ctx) *store.Session {
	s, _ := c.Locals("sess").(*store.Session)
	return s
}

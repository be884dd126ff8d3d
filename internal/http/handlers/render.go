package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sudsshop/internal/domain"
	"sudsshop/internal/i18n"
)

// render wraps c.Render with the data every template wants: the language
// table, cart badge/overlay state, the admin flag and the CSRF token.
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if s := sess(c); s != nil {
		lang := s.Lang()
		data["Lang"] = lang
		data["T"] = i18n.T(lang)
		data["CartCount"] = s.CartCount()
		data["CartItems"] = s.CartItems()
		data["CartTotal"] = domain.USD(s.CartTotal())
		data["CartOpen"] = s.View().CartOpen
		data["IsAdmin"] = s.IsAdmin()
	} else {
		data["T"] = i18n.T(i18n.EN)
	}
	if bot, ok := c.Locals("bot").(string); ok {
		data["Bot"] = bot
	}
	if tok, ok := c.Locals("CSRFToken").(string); ok && tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

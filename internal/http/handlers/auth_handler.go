package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "sudsshop/internal/log"
	"sudsshop/internal/services"
	"sudsshop/internal/view"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// LoginForm shows the owner-access gate.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	s := sess(c)
	if s.IsAdmin() {
		return c.Redirect("/admin")
	}
	s.ShowLogin()
	return render(c, "admin_login", fiber.Map{"Err": s.LoginError()})
}

// Login checks the shop password. Mismatch re-renders the gate with the
// error flag set; attempts beyond the route limiter are not counted.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	s := sess(c)
	if err := h.Auth.Login(s, c.FormValue("password")); err != nil {
		if errors.Is(err, services.ErrBadPassword) {
			applog.Security(c, "admin.login.fail", nil)
			c.Status(fiber.StatusUnauthorized)
			return render(c, "admin_login", fiber.Map{"Err": true})
		}
		applog.Error(c, "admin.login.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}
	applog.Audit(c, "admin.login.success", nil)
	return c.Redirect("/admin")
}

// Toggle is the single header button shared by all screens: it leaves the
// admin area (logging out) or routes to the panel / login gate.
func (h *AuthHandler) Toggle(c *fiber.Ctx) error {
	switch sess(c).ToggleAdmin() {
	case view.Admin:
		return c.Redirect("/admin")
	case view.AdminLogin:
		return c.Redirect("/login")
	default:
		applog.Audit(c, "admin.logout", nil)
		return c.Redirect("/")
	}
}

// Logout is the admin panel's explicit close action.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess(c).ReturnHome()
	applog.Audit(c, "admin.logout", nil)
	return c.Redirect("/")
}

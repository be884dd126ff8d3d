package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "sudsshop/internal/log"
	"sudsshop/internal/store"
	"sudsshop/internal/validate"
)

type StoreHandler struct {
	Catalog *store.Catalog
}

// Home renders the storefront and resets navigation to the home screen.
func (h *StoreHandler) Home(c *fiber.Ctx) error {
	sess(c).ReturnHome()
	return render(c, "home", fiber.Map{"Products": h.Catalog.List()})
}

// Detail renders the product page; opening it without a valid selection goes
// back to the collection.
func (h *StoreHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, found := h.Catalog.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	if err := sess(c).SelectProduct(p.ID); err != nil {
		return c.Redirect("/")
	}
	return render(c, "product", fiber.Map{"P": p})
}

// ToggleLang flips EN/KM and returns to the page the visitor was on.
func (h *StoreHandler) ToggleLang(c *fiber.Ctx) error {
	sess(c).ToggleLang()
	ref := c.Get("Referer")
	if ref == "" {
		ref = "/"
	}
	return c.Redirect(ref)
}

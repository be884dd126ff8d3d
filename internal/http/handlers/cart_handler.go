package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "sudsshop/internal/log"
	"sudsshop/internal/store"
	"sudsshop/internal/validate"
)

type CartHandler struct {
	Catalog *store.Catalog
}

// Add copies the product into the cart (or bumps its quantity) and opens the
// cart overlay, so the redirect lands on home with the drawer showing.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	p, found := h.Catalog.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).SendString("unknown product")
	}
	sess(c).AddToCart(p)
	applog.Info(c, "cart.add", map[string]any{"product": id})
	return c.Redirect("/")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	s := sess(c)
	s.RemoveFromCart(id)
	s.OpenCart()
	return c.Redirect("/")
}

// UpdateQuantity applies the +1/-1 stepper; the engine floors at one.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	delta := validate.Delta(c.FormValue("delta"))
	s := sess(c)
	s.UpdateQuantity(id, delta)
	s.OpenCart()
	return c.Redirect("/")
}

func (h *CartHandler) Open(c *fiber.Ctx) error {
	sess(c).OpenCart()
	return c.Redirect("/")
}

func (h *CartHandler) Close(c *fiber.Ctx) error {
	sess(c).CloseCart()
	return c.Redirect("/")
}

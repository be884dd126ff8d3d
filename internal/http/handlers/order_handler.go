package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sudsshop/internal/domain"
	applog "sudsshop/internal/log"
	"sudsshop/internal/services"
	"sudsshop/internal/store"
	"sudsshop/internal/validate"
	"sudsshop/internal/view"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// Begin is the cart overlay's checkout button: closes the overlay and moves
// to the checkout screen.
func (h *OrderHandler) Begin(c *fiber.Ctx) error {
	sess(c).BeginCheckout()
	return c.Redirect("/checkout")
}

// Checkout renders the form. Reaching it outside the checkout screen (deep
// link, stale tab) goes home; the transition runs through the cart overlay.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	s := sess(c)
	if s.View().Screen != view.Checkout {
		return c.Redirect("/")
	}
	return h.renderCheckout(c, s, "")
}

// Place runs the order submission flow and translates its outcome: success
// banner, deep-link redirect, or error banner with everything kept intact.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	s := sess(c)

	phone, okPhone := validate.Phone(c.FormValue("phone"))
	address, okAddr := validate.Address(c.FormValue("address"))
	if !okPhone || !okAddr {
		applog.Security(c, "validation.fail", map[string]any{"field": "contact"})
		return h.renderCheckout(c, s, "Please provide a phone number and delivery address.")
	}
	cd := domain.CustomerDetails{
		Phone:   phone,
		Address: address,
		Name:    c.FormValue("name"),
		Note:    c.FormValue("note"),
	}

	outcome, err := h.Orders.Submit(c.Context(), s, cd)
	switch {
	case errors.Is(err, services.ErrCartEmpty):
		return c.Redirect("/")
	case errors.Is(err, services.ErrSubmitInFlight):
		return h.renderCheckout(c, s, "")
	case err != nil && outcome.Status == store.OrderError:
		applog.Error(c, "order.place.fail", err, nil)
		return h.renderCheckout(c, s, "")
	case err != nil:
		applog.Error(c, "order.place.fail", err, nil)
		return h.renderCheckout(c, s, "Could not send your order. Please try again.")
	}

	if outcome.FallbackURL != "" {
		// Hand-off: the visitor finishes the order in their Telegram app.
		applog.Audit(c, "order.fallback", map[string]any{"channel": "deeplink"})
		return c.Redirect(outcome.FallbackURL)
	}

	applog.Audit(c, "order.place", map[string]any{"status": string(outcome.Status)})
	return h.renderCheckout(c, s, "")
}

func (h *OrderHandler) renderCheckout(c *fiber.Ctx, s *store.Session, formErr string) error {
	return render(c, "checkout", fiber.Map{
		"Status":   s.OrderStatus(),
		"Customer": s.Customer(),
		"FormErr":  formErr,
	})
}

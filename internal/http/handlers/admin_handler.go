package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sudsshop/internal/ai"
	"sudsshop/internal/domain"
	applog "sudsshop/internal/log"
	"sudsshop/internal/store"
	"sudsshop/internal/validate"
)

type AdminHandler struct {
	Catalog  *store.Catalog
	Describe *ai.Describer
}

// Panel renders the catalog management screen.
func (h *AdminHandler) Panel(c *fiber.Ctx) error {
	sess(c).EnterAdminScreen()
	return render(c, "admin", fiber.Map{"Products": h.Catalog.List()})
}

// AddProduct creates a catalog entry from the panel form. The id is minted
// here so the form can't collide with an existing entry.
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	p, ok := productFromForm(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("name and a non-negative price are required")
	}
	p.ID = uuid.NewString()
	if err := h.Catalog.Add(p); err != nil {
		applog.Error(c, "admin.product.add.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("could not save product")
	}
	applog.Audit(c, "admin.product.add", map[string]any{"product": p.ID})
	return c.Redirect("/admin")
}

// UpdateProduct replaces the entry with the submitted id; unknown ids fall
// through as a no-op redirect.
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	p, okForm := productFromForm(c)
	if !okForm {
		return c.Status(fiber.StatusBadRequest).SendString("name and a non-negative price are required")
	}
	p.ID = id
	if err := h.Catalog.Update(p); err != nil {
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not save product")
	}
	applog.Audit(c, "admin.product.update", map[string]any{"product": id})
	return c.Redirect("/admin")
}

// DeleteProduct removes an entry. The "are you sure" step is the form's
// confirm attribute in the panel; the store itself just deletes.
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	if err := h.Catalog.Delete(id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not delete product")
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.Redirect("/admin")
}

// GenerateDescription asks the AI helper for a sales blurb. Failures come
// back as a JSON error the panel surfaces as a blocking alert.
func (h *AdminHandler) GenerateDescription(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Scent       string `json:"scent"`
		Ingredients string `json:"ingredients"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product name is required"})
	}
	text, err := h.Describe.Describe(c.Context(), req.Name, req.Scent, req.Ingredients)
	if err != nil {
		applog.Error(c, "admin.describe.fail", err, map[string]any{"product": req.Name})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to generate description."})
	}
	return c.JSON(fiber.Map{"description": text})
}

func productFromForm(c *fiber.Ctx) (domain.Product, bool) {
	name, okName := validate.ProductName(c.FormValue("name"))
	price, okPrice := validate.Price(c.FormValue("price"))
	if !okName || !okPrice {
		return domain.Product{}, false
	}
	p := domain.Product{
		Name:          name,
		NameKM:        strings.TrimSpace(c.FormValue("name_km")),
		Price:         price,
		Description:   strings.TrimSpace(c.FormValue("description")),
		DescriptionKM: strings.TrimSpace(c.FormValue("description_km")),
		Image:         strings.TrimSpace(c.FormValue("image")),
		Scent:         strings.TrimSpace(c.FormValue("scent")),
		ScentKM:       strings.TrimSpace(c.FormValue("scent_km")),
		Ingredients:   strings.TrimSpace(c.FormValue("ingredients")),
		IngredientsKM: strings.TrimSpace(c.FormValue("ingredients_km")),
	}
	// Gallery images arrive one URL per line.
	for _, line := range strings.Split(c.FormValue("images"), "\n") {
		if url := strings.TrimSpace(line); url != "" {
			p.Images = append(p.Images, url)
		}
	}
	return p, true
}

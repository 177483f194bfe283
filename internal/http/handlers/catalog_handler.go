package handlers

import (
	"tiendacell/internal/services"
	"tiendacell/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		return err
	}
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	return render(c, "home", fiber.Map{
		"Products":   products,
		"Categories": cats,
		"Notice":     takeFlash(c),
	})
}

func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	cat, err := h.Catalog.GetCategory(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	products, err := h.Catalog.ProductsByCategory(id)
	if err != nil {
		return err
	}
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	return render(c, "category", fiber.Map{
		"Category":   cat,
		"Products":   products,
		"Categories": cats,
	})
}

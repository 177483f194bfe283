package handlers

import (
	"errors"

	applog "tiendacell/internal/log"
	"tiendacell/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

// View renders the cart page shell; line items load through the JSON API.
func (h *CartHandler) View(c *fiber.Ctx) error {
	ensureSID(c)
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	return render(c, "cart", fiber.Map{"Categories": cats})
}

type addToCartBody struct {
	ProductID int64 `json:"product_id"`
}

// AddAPI handles POST /api/add-to-cart.
func (h *CartHandler) AddAPI(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body addToCartBody
	if err := c.BodyParser(&body); err != nil || body.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing product_id"})
	}
	if err := h.Cart.Add(sid, body.ProductID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		applog.Error(c, "cart.add.fail", err, map[string]any{"product_id": body.ProductID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not add to cart"})
	}
	applog.Info(c, "cart.add", map[string]any{"product_id": body.ProductID})
	return c.JSON(fiber.Map{"success": true})
}

// ListAPI handles GET /api/cart; the body is always a JSON array.
func (h *CartHandler) ListAPI(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Cart.Items(sid)
	if err != nil {
		applog.Error(c, "cart.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load cart"})
	}
	return c.JSON(items)
}

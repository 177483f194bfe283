package handlers

import (
	"errors"
	"path"
	"path/filepath"
	"strconv"

	"tiendacell/internal/config"
	"tiendacell/internal/domain"
	applog "tiendacell/internal/log"
	"tiendacell/internal/services"
	"tiendacell/internal/validate"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var formValidator = validator.New()

type AdminHandler struct {
	Catalog *services.CatalogService
	Cfg     config.Config
}

// productForm carries the parsed add-product fields for range validation.
type productForm struct {
	Name        string  `validate:"required,max=100"`
	Description string  `validate:"max=500"`
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
	CategoryID  int64   `validate:"gt=0"`
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	count, err := h.Catalog.CountProducts()
	if err != nil {
		return err
	}
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	low, err := h.Catalog.LowStock(h.Cfg.LowStockThreshold)
	if err != nil {
		return err
	}
	return render(c, "admin_dashboard", fiber.Map{
		"ProductCount": count,
		"Categories":   cats,
		"LowStock":     low,
	})
}

// GET /admin/inventory
func (h *AdminHandler) Inventory(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		return err
	}
	return render(c, "admin_inventory", fiber.Map{
		"Products": products,
		"Notice":   takeFlash(c),
	})
}

// GET /admin/product/new
func (h *AdminHandler) NewProductForm(c *fiber.Ctx) error {
	return h.renderProductForm(c, fiber.StatusOK, "")
}

// POST /admin/product/new
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return h.renderProductForm(c, fiber.StatusBadRequest, "Price must be a non-negative number")
	}
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil {
		return h.renderProductForm(c, fiber.StatusBadRequest, "Stock must be a non-negative integer")
	}
	catID, _ := validate.ID(c.FormValue("category_id"))

	form := productForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Stock:       stock,
		CategoryID:  catID,
	}
	form.Price, _ = price.Float64()
	if err := formValidator.Struct(form); err != nil {
		applog.Security(c, "admin.product.validation.fail", map[string]any{"err": err.Error()})
		return h.renderProductForm(c, fiber.StatusBadRequest, "Please review the form fields")
	}

	// Optional image upload; collisions overwrite.
	imagePath := ""
	if file, ferr := c.FormFile("image"); ferr == nil && file != nil && file.Filename != "" {
		name := validate.Filename(file.Filename)
		if name != "" {
			dst := filepath.Join(h.Cfg.MediaDir, "products", name)
			if err := c.SaveFile(file, dst); err != nil {
				applog.Error(c, "admin.product.image.save.fail", err, map[string]any{"file": name})
				return err
			}
			imagePath = path.Join("products", name)
		}
	}

	p := &domain.Product{
		Name:        form.Name,
		Price:       price,
		Description: form.Description,
		Stock:       form.Stock,
		CategoryID:  form.CategoryID,
		ImagePath:   imagePath,
	}
	if err := h.Catalog.CreateProduct(p); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return h.renderProductForm(c, fiber.StatusBadRequest, "Unknown category")
		}
		applog.Error(c, "admin.product.create.fail", err, map[string]any{"name": form.Name})
		return err
	}

	applog.Audit(c, "admin.product.create", map[string]any{"product_id": p.ID, "name": p.Name})
	setFlash(c, "Product added successfully")
	return c.Redirect("/admin/inventory")
}

func (h *AdminHandler) renderProductForm(c *fiber.Ctx, status int, errMsg string) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	c.Status(status)
	return render(c, "admin_product_new", fiber.Map{
		"Categories": cats,
		"Err":        errMsg,
	})
}

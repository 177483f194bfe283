package handlers

import (
	"errors"

	applog "tiendacell/internal/log"
	"tiendacell/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Svc *services.CheckoutService
}

// Checkout redirects to the pre-filled WhatsApp link, or back home with a
// notice when the cart is empty.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	target, err := h.Svc.BuildRedirect(sid)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			setFlash(c, "Your cart is empty")
			return c.Redirect("/")
		}
		applog.Error(c, "checkout.fail", err, nil)
		return err
	}
	applog.Audit(c, "checkout.redirect", map[string]any{"sid": sid})
	return c.Redirect(target)
}

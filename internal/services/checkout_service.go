package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyCart signals a checkout attempt with no line items; the caller shows
// a notice instead of redirecting.
var ErrEmptyCart = errors.New("cart is empty")

const checkoutGreeting = "Hola! Me gustaría realizar la siguiente compra:"

type CheckoutService struct {
	Cart   *CartService
	Number string // WhatsApp destination, from config
}

func NewCheckoutService(cart *CartService, number string) *CheckoutService {
	return &CheckoutService{Cart: cart, Number: number}
}

// BuildRedirect turns the session cart into a wa.me deep link with the order
// summary as the pre-filled message, then clears the cart.
func (s *CheckoutService) BuildRedirect(sessionID string) (string, error) {
	items, err := s.Cart.Items(sessionID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	var b strings.Builder
	b.WriteString(checkoutGreeting)
	b.WriteString("\n\n")
	total := decimal.Zero
	for _, it := range items {
		subtotal := it.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
		total = total.Add(subtotal)
		fmt.Fprintf(&b, "- %s x%d: $%s\n", it.Name, it.Qty, subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: $%s", total.StringFixed(2))

	if err := s.Cart.Clear(sessionID); err != nil {
		return "", err
	}
	return "https://wa.me/" + s.Number + "?text=" + encodeMessage(b.String()), nil
}

// encodeMessage percent-encodes for a query value with %20 for spaces, which
// is what wa.me expects.
func encodeMessage(msg string) string {
	return strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}

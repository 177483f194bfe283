package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"tiendacell/internal/repos"
)

func postAddToCart(t *testing.T, app *fiber.App, sid string, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/add-to-cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAddToCartUnknownProduct(t *testing.T) {
	app, _ := newApp(t)
	resp := postAddToCart(t, app, "", `{"product_id":999}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddToCartMissingProductID(t *testing.T) {
	app, _ := newApp(t)
	resp := postAddToCart(t, app, "", `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddToCartAndListRoundTrip(t *testing.T) {
	app, _ := newApp(t)

	resp := postAddToCart(t, app, "", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sid := extractCookie(resp, "sid")
	require.NotEmpty(t, sid)

	var ack struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	require.True(t, ack.Success)

	resp = postAddToCart(t, app, sid, `{"product_id":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	listResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var items []repos.CartItemRow
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&items))
	require.Len(t, items, 1)
	require.Equal(t, int64(1), items[0].ProductID)
	require.Equal(t, 2, items[0].Qty)
	require.Equal(t, "iPhone 13 Pro Max", items[0].Name)
	require.True(t, decimal.RequireFromString("899.99").Equal(items[0].Price))
}

func TestCartListsEmptyArrayForFreshSession(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/cart", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "[]", strings.TrimSpace(string(body)))
}

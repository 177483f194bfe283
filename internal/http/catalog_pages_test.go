package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func getBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHomeRendersCatalog(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := getBody(t, resp)
	require.Contains(t, body, "iPhone 13 Pro Max")
	require.Contains(t, body, "Samsung Galaxy A16")
	require.Contains(t, body, "Apple")
	require.Contains(t, body, "Android")
}

func TestCategoryPageFiltersProducts(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/category/2", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := getBody(t, resp)
	require.Contains(t, body, "Motorola G24")
	require.NotContains(t, body, "iPhone 14")
}

func TestCategoryMissingIs404(t *testing.T) {
	app, _ := newApp(t)

	for _, path := range []string{"/category/99", "/category/abc"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, "path %s", path)
	}
}

func TestCartPageRenders(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/cart", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, getBody(t, resp), "/api/cart")
}

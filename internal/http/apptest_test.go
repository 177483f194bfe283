package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"tiendacell/internal/config"
	"tiendacell/internal/http/handlers"
	"tiendacell/internal/repos"
	"tiendacell/internal/services"
)

// newApp wires the real handlers over a seeded in-memory DB, mirroring the
// production route table without the rate limiting and CSRF middleware.
func newApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	return buildApp(t, false)
}

// newAppCSRF additionally installs the CSRF middleware exactly as production
// wires it, for tests of the HTML form surface.
func newAppCSRF(t *testing.T) (*fiber.App, *sqlx.DB) {
	return buildApp(t, true)
}

func buildApp(t *testing.T, withCSRF bool) (*fiber.App, *sqlx.DB) {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, repos.EnsureAdmin(db, "admin", "adminpass"))

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	if withCSRF {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:csrf",
			CookieName:     "csrf_",
			CookieSameSite: "Lax",
			ContextKey:     "csrf",
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/api/")
			},
		}))
		app.Use(func(c *fiber.Ctx) error {
			if tok := c.Locals("csrf"); tok != nil {
				c.Locals("CSRFToken", tok.(string))
			}
			return c.Next()
		})
	}
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	cfg := config.Config{
		WhatsAppNumber:    "+5491100000000",
		LowStockThreshold: 5,
		MediaDir:          t.TempDir(),
	}
	deps := handlers.NewDeps(db, cfg)

	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/category/:id", deps.CatalogHandler.Category)
	app.Get("/cart", deps.CartHandler.View)
	app.Get("/checkout", deps.CheckoutHandler.Checkout)

	app.Post("/api/add-to-cart", deps.CartHandler.AddAPI)
	app.Get("/api/cart", deps.CartHandler.ListAPI)

	app.Get("/admin/login", authH.LoginForm)
	app.Post("/admin/login", authH.Login)
	app.Get("/admin/logout", authH.Logout)

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/inventory", deps.AdminHandler.Inventory)
	admin.Get("/product/new", deps.AdminHandler.NewProductForm)
	admin.Post("/product/new", deps.AdminHandler.CreateProduct)

	return app, db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// bindAdminSession attaches a session id to the seeded admin account directly.
func bindAdminSession(t *testing.T, db *sqlx.DB, sid string) {
	t.Helper()
	var adminID int64
	require.NoError(t, db.Get(&adminID, `SELECT id FROM users WHERE username='admin'`))
	require.NoError(t, repos.NewUserRepo(db).BindSession(sid, adminID))
}

package handlers

import (
	"tiendacell/internal/config"
	"tiendacell/internal/repos"
	"tiendacell/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	cartSvc := services.NewCartService(cartRepo, catalogSvc)
	checkoutSvc := services.NewCheckoutService(cartSvc, cfg.WhatsAppNumber)

	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc, Catalog: catalogSvc},
		CheckoutHandler: &CheckoutHandler{Svc: checkoutSvc},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc, Cfg: cfg},
	}
}

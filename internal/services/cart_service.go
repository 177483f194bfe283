package services

import (
	"tiendacell/internal/repos"
)

type CartService struct {
	Carts   *repos.CartRepo
	Catalog *CatalogService
}

func NewCartService(carts *repos.CartRepo, catalog *CatalogService) *CartService {
	return &CartService{Carts: carts, Catalog: catalog}
}

// Add resolves the product and upserts it into the session cart: a repeat add
// bumps the quantity, a first add snapshots the current name and price.
func (s *CartService) Add(sessionID string, productID int64) error {
	p, err := s.Catalog.GetProduct(productID)
	if err != nil {
		return err
	}
	cartID, err := s.Carts.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.UpsertItem(cartID, p.ID, p.Name, p.Price)
}

// Items never fails on an unknown session; it returns an empty list.
func (s *CartService) Items(sessionID string) ([]repos.CartItemRow, error) {
	cartID, err := s.Carts.Ensure(sessionID)
	if err != nil {
		return nil, err
	}
	return s.Carts.Items(cartID)
}

func (s *CartService) Clear(sessionID string) error {
	cartID, err := s.Carts.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.Clear(cartID)
}

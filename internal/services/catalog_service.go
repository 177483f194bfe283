package services

import (
	"database/sql"
	"errors"

	"tiendacell/internal/domain"
	"tiendacell/internal/repos"
)

// ErrNotFound is returned when a category or product id does not exist.
var ErrNotFound = errors.New("not found")

const DefaultLowStockThreshold = 5

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) GetCategory(id int64) (domain.Category, error) {
	c, err := s.Cats.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, ErrNotFound
	}
	return c, err
}

// ProductsByCategory fails with ErrNotFound when the category itself is
// missing; an existing category with no products yields an empty slice.
func (s *CatalogService) ProductsByCategory(catID int64) ([]domain.Product, error) {
	if _, err := s.GetCategory(catID); err != nil {
		return nil, err
	}
	return s.Prods.ListByCategory(catID)
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (s *CatalogService) LowStock(threshold int) ([]domain.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return s.Prods.ListLowStock(threshold)
}

func (s *CatalogService) CountProducts() (int, error) {
	return s.Prods.Count()
}

// CreateProduct persists a new product after checking the category reference.
func (s *CatalogService) CreateProduct(p *domain.Product) error {
	if _, err := s.GetCategory(p.CategoryID); err != nil {
		return err
	}
	return s.Prods.Insert(p)
}

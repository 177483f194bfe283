package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"tiendacell/internal/domain"
	"tiendacell/internal/repos"
	"tiendacell/internal/services"
)

func seededDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	return db
}

func newCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	db := seededDB(t)
	return services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))
}

func TestGetProductNotFound(t *testing.T) {
	svc := newCatalog(t)
	_, err := svc.GetProduct(999)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductsByCategory(t *testing.T) {
	svc := newCatalog(t)

	apple, err := svc.ProductsByCategory(1)
	require.NoError(t, err)
	require.Len(t, apple, 3)
	for _, p := range apple {
		require.Equal(t, int64(1), p.CategoryID)
	}

	_, err = svc.ProductsByCategory(99)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestLowStockBoundary(t *testing.T) {
	svc := newCatalog(t)

	// Seed has nothing under 5; iPhone 16 sits exactly at the threshold.
	low, err := svc.LowStock(5)
	require.NoError(t, err)
	require.Empty(t, low)

	scarce := &domain.Product{
		Name:       "Nokia 3310",
		Price:      decimal.RequireFromString("59.99"),
		Stock:      3,
		CategoryID: 2,
	}
	require.NoError(t, svc.CreateProduct(scarce))

	low, err = svc.LowStock(5)
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, scarce.ID, low[0].ID)
	require.Equal(t, 3, low[0].Stock)
}

func TestCreateProductRequiresExistingCategory(t *testing.T) {
	svc := newCatalog(t)
	p := &domain.Product{
		Name:       "Ghost phone",
		Price:      decimal.RequireFromString("10.00"),
		Stock:      1,
		CategoryID: 42,
	}
	require.ErrorIs(t, svc.CreateProduct(p), services.ErrNotFound)
}

func TestCreateProductRoundTrips(t *testing.T) {
	svc := newCatalog(t)
	p := &domain.Product{
		Name:        "Pixel 9",
		Price:       decimal.RequireFromString("649.50"),
		Description: "Stock Android",
		Stock:       4,
		CategoryID:  2,
		ImagePath:   "products/pixel-9.jpg",
	}
	require.NoError(t, svc.CreateProduct(p))
	require.NotZero(t, p.ID)

	got, err := svc.GetProduct(p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Name, got.Name)
	require.True(t, p.Price.Equal(got.Price))
	require.Equal(t, p.Description, got.Description)
	require.Equal(t, p.ImagePath, got.ImagePath)

	count, err := svc.CountProducts()
	require.NoError(t, err)
	require.Equal(t, 7, count)
}

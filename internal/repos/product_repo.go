package repos

import (
	"tiendacell/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, name, price,
  COALESCE(description,'') AS description,
  stock, category_id,
  COALESCE(image_path,'') AS image_path,
  COALESCE(created_at,'') AS created_at`

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT`+productCols+` FROM products ORDER BY id`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) ListByCategory(catID int64) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT`+productCols+` FROM products WHERE category_id = ? ORDER BY id`, catID)
	return out, err
}

// ListLowStock returns products whose stock is strictly below threshold.
func (r *ProductRepo) ListLowStock(threshold int) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT`+productCols+` FROM products WHERE stock < ? ORDER BY id`, threshold)
	return out, err
}

func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}

func (r *ProductRepo) Insert(p *domain.Product) error {
	res, err := r.db.Exec(`
		INSERT INTO products(name,price,description,stock,category_id,image_path)
		VALUES(?,?,?,?,?,NULLIF(?,''))
	`, p.Name, p.Price, p.Description, p.Stock, p.CategoryID, p.ImagePath)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

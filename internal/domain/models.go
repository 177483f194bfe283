package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Product struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Description string          `db:"description" json:"description,omitempty"`
	Stock       int             `db:"stock" json:"stock"`
	CategoryID  int64           `db:"category_id" json:"category_id"`
	ImagePath   string          `db:"image_path" json:"image_path,omitempty"`
	CreatedAt   string          `db:"created_at" json:"-"`
}

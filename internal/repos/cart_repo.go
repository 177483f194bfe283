package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartItemRow is one line item of a session cart. Name and Price are frozen at
// add time, not re-synced with the catalog.
type CartItemRow struct {
	ProductID int64           `db:"product_id" json:"product_id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price_at_add" json:"price"`
	Qty       int             `db:"qty" json:"quantity"`
}

// Ensure creates the session's cart on first use. The insert is conflict-safe
// so two concurrent first adds cannot trip the UNIQUE constraint.
func (r *CartRepo) Ensure(sessionID string) (string, error) {
	_, err := r.db.Exec(`
		INSERT INTO carts(id,session_id,updated_at) VALUES(?,?,?)
		ON CONFLICT(session_id) DO NOTHING
	`, sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	var cartID string
	if err := r.db.Get(&cartID, `SELECT id FROM carts WHERE session_id = ?`, sessionID); err != nil {
		return "", err
	}
	return cartID, nil
}

// UpsertItem appends a new line with qty 1 or bumps the existing line by one.
// A single statement, so concurrent adds within a session serialize in SQLite.
func (r *CartRepo) UpsertItem(cartID string, productID int64, name string, price decimal.Decimal) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(cart_id,product_id,name,price_at_add,qty)
		VALUES(?,?,?,?,1)
		ON CONFLICT(cart_id,product_id) DO UPDATE SET qty = qty + 1
	`, cartID, productID, name, price)
	return err
}

// Items returns line items in insertion order.
func (r *CartRepo) Items(cartID string) ([]CartItemRow, error) {
	out := []CartItemRow{}
	err := r.db.Select(&out, `
	  SELECT product_id, name, price_at_add, qty
	  FROM cart_items
	  WHERE cart_id = ?
	  ORDER BY rowid
	`, cartID)
	return out, err
}

func (r *CartRepo) Clear(cartID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE cart_id = ?`, cartID)
	return err
}

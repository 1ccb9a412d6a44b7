package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type CartRepository interface {
	// WithTx returns a copy of the repository bound to tx.
	WithTx(tx *sql.Tx) CartRepository
	CreateCart(ctx context.Context) (*models.Cart, error)
	GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	// LockCart reads the cart row with FOR UPDATE; it must run inside a transaction.
	LockCart(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	DeleteCart(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error)
	GetItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error)
	UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*models.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error
	ClearItems(ctx context.Context, cartID uuid.UUID) (int64, error)
}

type cartRepository struct {
	DB DBTX
}

func NewCartRepo(db DBTX) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) WithTx(tx *sql.Tx) CartRepository {
	return &cartRepository{DB: tx}
}

const cartItemColumns = `ci.id, ci.cart_id, ci.quantity, p.id, p.name, p.old_price, p.discount`

func scanCartItem(row rowScanner) (models.CartItem, error) {
	var item models.CartItem

	err := row.Scan(&item.ID, &item.CartID, &item.Quantity, &item.Product.ID, &item.Product.Name, &item.Product.OldPrice, &item.Product.Discount)

	return item, err
}

func (r *cartRepository) CreateCart(ctx context.Context) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cart := &models.Cart{ID: uuid.New(), Items: []models.CartItem{}}

	query := `INSERT INTO carts (id) VALUES ($1) RETURNING created_at`

	if err := r.DB.QueryRowContext(dbCtx, query, cart.ID).Scan(&cart.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert cart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	return r.getCart(ctx, `SELECT id, created_at FROM carts WHERE id = $1`, id)
}

func (r *cartRepository) LockCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	return r.getCart(ctx, `SELECT id, created_at FROM carts WHERE id = $1 FOR UPDATE`, id)
}

func (r *cartRepository) getCart(ctx context.Context, query string, id uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cart := &models.Cart{}

	if err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&cart.ID, &cart.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return requireAffected(result)
}

func (r *cartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id`

	rows, err := r.DB.QueryContext(dbCtx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []models.CartItem{}

	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepository) GetItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1 AND ci.id = $2`

	item, err := scanCartItem(r.DB.QueryRowContext(dbCtx, query, cartID, itemID))
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return &item, nil
}

// UpsertItem adds quantity to the (cart, product) line in a single statement,
// creating the line when it does not exist yet.
func (r *cartRepository) UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity`

	item := &models.CartItem{CartID: cartID, Product: models.ProductSummary{ID: productID}}

	err := r.DB.QueryRowContext(dbCtx, query, uuid.New(), cartID, productID, quantity).Scan(&item.ID, &item.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart item: %w", mapPgError(err))
	}

	return item, nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND id = $3`, quantity, cartID, itemID)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", mapPgError(err))
	}

	return requireAffected(result)
}

func (r *cartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`, cartID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	return requireAffected(result)
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart items: %w", err)
	}

	return result.RowsAffected()
}

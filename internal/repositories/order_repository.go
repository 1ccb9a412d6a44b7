package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type OrderRepository interface {
	WithTx(tx *sql.Tx) OrderRepository
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItems(ctx context.Context, orderID uuid.UUID, items []models.OrderItem) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// ListOrders returns every order when ownerID is nil.
	ListOrders(ctx context.Context, ownerID *uuid.UUID, page, size int) ([]*models.Order, int, error)
	// UpdatePaymentStatus moves an order from one status to another and returns
	// ErrStatusConflict when the order is not currently in from.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, from, to models.PaymentStatus) error
	SetPaymentSession(ctx context.Context, id uuid.UUID, sessionID string) error
}

type orderRepository struct {
	DB DBTX
}

func NewOrderRepo(db DBTX) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) WithTx(tx *sql.Tx) OrderRepository {
	return &orderRepository{DB: tx}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order.ID = uuid.New()

	query := `
		INSERT INTO orders (id, owner_id, payment_status)
		VALUES ($1, $2, $3)
		RETURNING placed_at`

	err := r.DB.QueryRowContext(dbCtx, query, order.ID, order.OwnerID, order.PaymentStatus).Scan(&order.PlacedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", mapPgError(err))
	}

	return nil
}

func (r *orderRepository) CreateOrderItems(ctx context.Context, orderID uuid.UUID, items []models.OrderItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`

	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = orderID

		if _, err := r.DB.ExecContext(dbCtx, query, items[i].ID, orderID, items[i].Product.ID, items[i].Quantity); err != nil {
			return fmt.Errorf("failed to insert an order item: %w", mapPgError(err))
		}
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{}

	query := `
		SELECT id, placed_at, payment_status, owner_id, COALESCE(payment_session_id, '')
		FROM orders
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&order.ID, &order.PlacedAt, &order.PaymentStatus, &order.OwnerID, &order.PaymentSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	items, err := r.listItems(dbCtx, id)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.quantity, p.id, p.name, p.old_price, p.discount
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Quantity, &item.Product.ID, &item.Product.Name, &item.Product.OldPrice, &item.Product.Discount); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, ownerID *uuid.UUID, page, size int) ([]*models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM orders WHERE ($1::uuid IS NULL OR owner_id = $1)`

	if err := r.DB.QueryRowContext(dbCtx, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT id, placed_at, payment_status, owner_id, COALESCE(payment_session_id, '')
		FROM orders
		WHERE ($1::uuid IS NULL OR owner_id = $1)
		ORDER BY placed_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, ownerID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := []*models.Order{}

	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.PlacedAt, &order.PaymentStatus, &order.OwnerID, &order.PaymentSessionID); err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
	}

	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// items are loaded after the order cursor is closed so a tx-bound DBTX can reuse the connection
	for _, order := range orders {
		items, err := r.listItems(dbCtx, order.ID)
		if err != nil {
			return nil, 0, err
		}

		order.Items = items
	}

	return orders, total, nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, from, to models.PaymentStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET payment_status = $1 WHERE id = $2 AND payment_status = $3`

	result, err := r.DB.ExecContext(dbCtx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if n == 0 {
		return ErrStatusConflict
	}

	return nil
}

func (r *orderRepository) SetPaymentSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE orders SET payment_session_id = $1 WHERE id = $2`, sessionID, id)
	if err != nil {
		return fmt.Errorf("failed to store payment session: %w", err)
	}

	return requireAffected(result)
}

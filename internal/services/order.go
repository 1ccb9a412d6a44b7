package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	// PlaceOrder converts the cart into a pending order owned by owner in a
	// single transaction and empties the cart.
	PlaceOrder(ctx context.Context, cartID uuid.UUID, owner models.Viewer) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID, viewer models.Viewer) (*models.Order, error)
	ListOrders(ctx context.Context, viewer models.Viewer, page, size int) ([]*models.Order, int, error)
	MarkPaymentComplete(ctx context.Context, id uuid.UUID) (*models.Order, error)
	MarkPaymentFailed(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type orderService struct {
	tx       repository.TxRunner
	carts    repository.CartRepository
	orders   repository.OrderRepository
	notifier OrderNotifier
}

func NewOrderService(tx repository.TxRunner, carts repository.CartRepository, orders repository.OrderRepository, notifier OrderNotifier) OrderService {
	return &orderService{tx: tx, carts: carts, orders: orders, notifier: notifier}
}

func (s *orderService) PlaceOrder(ctx context.Context, cartID uuid.UUID, owner models.Viewer) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("cartId", cartID.String()))

	var placed *models.Order

	err := s.tx.WithTx(ctx, func(tx *sql.Tx) error {
		carts := s.carts.WithTx(tx)
		orders := s.orders.WithTx(tx)

		if _, err := carts.LockCart(ctx, cartID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.NotFoundError("Cart not found").WithError(err)
			}

			return err
		}

		cartItems, err := carts.ListItems(ctx, cartID)
		if err != nil {
			return err
		}

		if len(cartItems) == 0 {
			return appErrors.ValidationError("Cart is empty")
		}

		order := &models.Order{OwnerID: owner.UserID, PaymentStatus: models.PaymentStatusPending}
		if err := orders.CreateOrder(ctx, order); err != nil {
			return err
		}

		items := make([]models.OrderItem, len(cartItems))
		for i, cartItem := range cartItems {
			items[i] = models.OrderItem{Product: cartItem.Product, Quantity: cartItem.Quantity}
		}

		if err := orders.CreateOrderItems(ctx, order.ID, items); err != nil {
			return err
		}

		if _, err := carts.ClearItems(ctx, cartID); err != nil {
			return err
		}

		order.Items = items
		placed = order

		return nil
	})
	if err != nil {
		if appErrors.HasCode(err, appErrors.ErrCodeNotFound) || appErrors.HasCode(err, appErrors.ErrCodeValidation) {
			return nil, err
		}

		metrics.ConversionFailures.Inc()
		logger.Error("Cart to order conversion rolled back", slog.Any("error", err))

		return nil, appErrors.ConversionFailedError("Failed to place order").WithError(err)
	}

	if err := priceOrder(placed); err != nil {
		return nil, appErrors.InternalError("Failed to price order").WithError(err)
	}

	metrics.OrdersPlaced.Inc()
	logger.Info("Order placed", slog.String("orderId", placed.ID.String()), slog.Int("items", len(placed.Items)))

	if err := s.notifier.OrderPlaced(ctx, owner.Email, placed); err != nil {
		logger.Warn("Order confirmation email failed", slog.String("orderId", placed.ID.String()), slog.Any("error", err))
	}

	return placed, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID, viewer models.Viewer) (*models.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Order not found", "Failed to get order")
	}

	// foreign orders are reported as missing
	if !viewer.CanAccess(order.OwnerID) {
		return nil, appErrors.NotFoundError("Order not found")
	}

	if err := priceOrder(order); err != nil {
		return nil, appErrors.InternalError("Failed to price order").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, viewer models.Viewer, page, size int) ([]*models.Order, int, error) {
	var owner *uuid.UUID
	if !viewer.IsStaff {
		owner = &viewer.UserID
	}

	orders, total, err := s.orders.ListOrders(ctx, owner, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list orders").WithError(err)
	}

	for _, order := range orders {
		if err := priceOrder(order); err != nil {
			return nil, 0, appErrors.InternalError("Failed to price order").WithError(err)
		}
	}

	return orders, total, nil
}

func (s *orderService) MarkPaymentComplete(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.transition(ctx, id, models.PaymentStatusComplete)
}

func (s *orderService) MarkPaymentFailed(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.transition(ctx, id, models.PaymentStatusFailed)
}

// transition applies a payment status change with a conditional update. When a
// concurrent caller won the race the order is re-read: reaching the same target
// counts as success, anything else is an invalid transition.
func (s *orderService) transition(ctx context.Context, id uuid.UUID, target models.PaymentStatus) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", id.String()))

	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Order not found", "Failed to get order")
	}

	changed, err := order.PaymentStatus.Transition(target)
	if err != nil {
		return nil, invalidTransition(order.PaymentStatus, target, err)
	}

	if changed {
		err := s.orders.UpdatePaymentStatus(ctx, id, order.PaymentStatus, target)

		switch {
		case errors.Is(err, repository.ErrStatusConflict):
			current, getErr := s.orders.GetOrderByID(ctx, id)
			if getErr != nil {
				return nil, lookupError(getErr, "Order not found", "Failed to get order")
			}

			if current.PaymentStatus != target {
				return nil, invalidTransition(current.PaymentStatus, target, err)
			}

			order = current
		case err != nil:
			return nil, appErrors.DatabaseError("Failed to update payment status").WithError(err)
		default:
			order.PaymentStatus = target

			metrics.PaymentTransitions.WithLabelValues(string(target)).Inc()
			logger.Info("Payment status updated", slog.String("status", string(target)))
		}
	}

	if err := priceOrder(order); err != nil {
		return nil, appErrors.InternalError("Failed to price order").WithError(err)
	}

	return order, nil
}

func invalidTransition(from, to models.PaymentStatus, cause error) *appErrors.AppError {
	return appErrors.InvalidTransitionError(fmt.Sprintf("Cannot change payment status from %s to %s", from, to)).WithError(cause)
}

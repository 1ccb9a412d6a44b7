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

type CartService interface {
	CreateCart(ctx context.Context) (*models.Cart, error)
	GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	DeleteCart(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error)
	GetItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error)
	AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddCartItemRequest) (*models.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.CartItem, error)
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error
}

type cartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	cart, err := s.repo.CreateCart(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetCart(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Cart not found", "Failed to get cart")
	}

	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list cart items").WithError(err)
	}

	total, err := priceCartItems(items)
	if err != nil {
		return nil, appErrors.InternalError("Failed to price cart").WithError(err)
	}

	cart.Items = items
	cart.Total = total

	return cart, nil
}

func (s *cartService) DeleteCart(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCart(ctx, id); err != nil {
		return lookupError(err, "Cart not found", "Failed to delete cart")
	}

	return nil
}

func (s *cartService) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	return cart.Items, nil
}

func (s *cartService) GetItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error) {
	item, err := s.repo.GetItem(ctx, cartID, itemID)
	if err != nil {
		return nil, lookupError(err, "Cart item not found", "Failed to get cart item")
	}

	if err := priceCartItem(item); err != nil {
		return nil, appErrors.InternalError("Failed to price cart item").WithError(err)
	}

	return item, nil
}

// AddItem merges quantity into the existing line for the product, if any.
func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddCartItemRequest) (*models.CartItem, error) {
	logger := middleware.LoggerFromContext(ctx)

	if err := checkQuantity(req.Quantity); err != nil {
		return nil, err
	}

	item, err := s.repo.UpsertItem(ctx, cartID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrReferenceMissing) {
			return nil, appErrors.NotFoundError("Cart or product not found").WithError(err)
		}

		if errors.Is(err, repository.ErrOutOfRange) {
			return nil, quantityTooLarge().WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	metrics.CartItemUpserts.Inc()
	logger.Info("Cart item upserted",
		slog.String("cartId", cartID.String()),
		slog.String("productId", req.ProductID.String()),
		slog.Int("quantity", item.Quantity))

	return s.GetItem(ctx, cartID, item.ID)
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.CartItem, error) {
	if err := checkQuantity(req.Quantity); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItemQuantity(ctx, cartID, itemID, req.Quantity); err != nil {
		if errors.Is(err, repository.ErrOutOfRange) {
			return nil, quantityTooLarge().WithError(err)
		}

		return nil, lookupError(err, "Cart item not found", "Failed to update cart item")
	}

	return s.GetItem(ctx, cartID, itemID)
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	if err := s.repo.DeleteItem(ctx, cartID, itemID); err != nil {
		return lookupError(err, "Cart item not found", "Failed to remove cart item")
	}

	return nil
}

func checkQuantity(quantity int) *appErrors.AppError {
	if quantity < 1 {
		return appErrors.InvalidQuantityError("Quantity must be at least 1")
	}

	if quantity > models.MaxItemQuantity {
		return quantityTooLarge()
	}

	return nil
}

func quantityTooLarge() *appErrors.AppError {
	return appErrors.InvalidQuantityError(fmt.Sprintf("Quantity must be at most %d", models.MaxItemQuantity))
}

// lookupError maps sql.ErrNoRows to a NotFound error and anything else to a
// database error.
func lookupError(err error, notFound, failed string) *appErrors.AppError {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFoundError(notFound).WithError(err)
	}

	return appErrors.DatabaseError(failed).WithError(err)
}

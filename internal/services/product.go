package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultInventory = 5

var defaultBasePrice = decimal.RequireFromString("100.00")

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewProductService(repo repository.ProductRepository, c cache.Cache, ttl time.Duration) ProductService {
	return &productService{repo: repo, cache: c, ttl: ttl}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Slug:        req.Slug,
		Discount:    req.Discount,
		OldPrice:    defaultBasePrice,
		CategoryID:  req.CategoryID,
		Inventory:   defaultInventory,
		TopDeal:     req.TopDeal,
		FlashSales:  req.FlashSales,
		Image:       req.Image,
	}

	if req.OldPrice != nil {
		product.OldPrice = *req.OldPrice
	}

	if req.Inventory != nil {
		product.Inventory = *req.Inventory
	}

	if product.OldPrice.IsNegative() {
		return nil, appErrors.AddValidationError("old_price", "must not be negative")
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, productWriteError(err, "Failed to create product")
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := cache.ReadThrough(ctx, s.cache, cache.Key(cache.ProductKeyPrefix, id.String()), s.ttl,
		func(ctx context.Context) (*models.Product, error) {
			return s.repo.GetProductByID(ctx, id)
		})
	if err != nil {
		return nil, lookupError(err, "Product not found", "Failed to get product")
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Product not found", "Failed to get product")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = *req.Description
	}

	if req.Slug != nil {
		product.Slug = req.Slug
	}

	if req.Discount != nil {
		product.Discount = *req.Discount
	}

	if req.OldPrice != nil {
		if req.OldPrice.IsNegative() {
			return nil, appErrors.AddValidationError("old_price", "must not be negative")
		}

		product.OldPrice = *req.OldPrice
	}

	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}

	if req.Inventory != nil {
		product.Inventory = *req.Inventory
	}

	if req.TopDeal != nil {
		product.TopDeal = *req.TopDeal
	}

	if req.FlashSales != nil {
		product.FlashSales = *req.FlashSales
	}

	if req.Image != nil {
		product.Image = *req.Image
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, productWriteError(err, "Failed to update product")
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReferenceMissing) {
			return appErrors.BadRequestError("Product is referenced by existing orders").WithError(err)
		}

		return lookupError(err, "Product not found", "Failed to delete product")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	key := cache.Key(cache.ProductKeyPrefix, id.String())

	if err := s.cache.Delete(ctx, key); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Cache invalidation failed", slog.String("key", key), slog.Any("error", err))
	}
}

func productWriteError(err error, failed string) *appErrors.AppError {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.DuplicateEntryError("Product slug already exists").WithError(err)
	case errors.Is(err, repository.ErrReferenceMissing):
		return appErrors.NotFoundError("Category not found").WithError(err)
	default:
		return lookupError(err, "Product not found", failed)
	}
}

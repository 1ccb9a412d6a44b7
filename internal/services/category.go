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
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewCategoryService(repo repository.CategoryRepository, c cache.Cache, ttl time.Duration) CategoryService {
	return &categoryService{repo: repo, cache: c, ttl: ttl}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Title:             req.Title,
		Slug:              req.Slug,
		FeaturedProductID: req.FeaturedProductID,
		Icon:              req.Icon,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, categoryWriteError(err, "Failed to create category")
	}

	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := cache.ReadThrough(ctx, s.cache, cache.Key(cache.CategoryKeyPrefix, id.String()), s.ttl,
		func(ctx context.Context) (*models.Category, error) {
			return s.repo.GetCategoryByID(ctx, id)
		})
	if err != nil {
		return nil, lookupError(err, "Category not found", "Failed to get category")
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Category not found", "Failed to get category")
	}

	if req.Title != nil {
		category.Title = *req.Title
	}

	if req.Slug != nil {
		category.Slug = req.Slug
	}

	if req.FeaturedProductID != nil {
		category.FeaturedProductID = req.FeaturedProductID
	}

	if req.Icon != nil {
		category.Icon = req.Icon
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, categoryWriteError(err, "Failed to update category")
	}

	s.invalidate(ctx, id)

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return lookupError(err, "Category not found", "Failed to delete category")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list categories").WithError(err)
	}

	return categories, nil
}

func (s *categoryService) invalidate(ctx context.Context, id uuid.UUID) {
	key := cache.Key(cache.CategoryKeyPrefix, id.String())

	if err := s.cache.Delete(ctx, key); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Cache invalidation failed", slog.String("key", key), slog.Any("error", err))
	}
}

func categoryWriteError(err error, failed string) *appErrors.AppError {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.DuplicateEntryError("Category slug already exists").WithError(err)
	case errors.Is(err, repository.ErrReferenceMissing):
		return appErrors.NotFoundError("Featured product not found").WithError(err)
	default:
		return lookupError(err, "Category not found", failed)
	}
}

package service_test

import (
	"database/sql"
	"errors"
	"testing"

	cacheMocks "github.com/aaravmahajanofficial/storefront/internal/cache/mocks"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCategoryService(t *testing.T) (service.CategoryService, *mocks.MockCategoryRepository, *cacheMocks.MockCache) {
	repo := mocks.NewMockCategoryRepository(t)
	cache := cacheMocks.NewMockCache(t)

	return service.NewCategoryService(repo, cache, catalogTTL), repo, cache
}

func TestCategoryService(t *testing.T) {
	ctx := t.Context()
	id := uuid.New()
	key := "category:" + id.String()

	t.Run("Success - Create", func(t *testing.T) {
		// Arrange
		categoryService, repo, _ := setupCategoryService(t)
		repo.On("CreateCategory", ctx, mock.MatchedBy(func(c *models.Category) bool {
			return c.Title == "Shoes" && *c.Slug == "shoes"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Category).ID = id
		}).Return(nil).Once()

		// Act
		category, err := categoryService.CreateCategory(ctx, &models.CreateCategoryRequest{Title: "Shoes", Slug: ptr("shoes")})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, id, category.ID)
	})

	t.Run("Failure - Create With Unknown Featured Product", func(t *testing.T) {
		categoryService, repo, _ := setupCategoryService(t)
		featured := uuid.New()
		repo.On("CreateCategory", ctx, mock.Anything).Return(repository.ErrReferenceMissing).Once()

		_, err := categoryService.CreateCategory(ctx, &models.CreateCategoryRequest{Title: "Hats", FeaturedProductID: &featured})

		appErr := requireAppError(t, err, appErrors.ErrCodeNotFound)
		assert.Equal(t, "Featured product not found", appErr.Message)
	})

	t.Run("Failure - Create Duplicate Slug", func(t *testing.T) {
		categoryService, repo, _ := setupCategoryService(t)
		repo.On("CreateCategory", ctx, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := categoryService.CreateCategory(ctx, &models.CreateCategoryRequest{Title: "Hats", Slug: ptr("hats")})

		requireAppError(t, err, appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("Success - Get Through Cache", func(t *testing.T) {
		// Arrange
		categoryService, repo, cache := setupCategoryService(t)
		stored := &models.Category{ID: id, Title: "Shoes"}

		cache.On("Get", ctx, key, mock.Anything).Return(false, nil).Once()
		repo.On("GetCategoryByID", ctx, id).Return(stored, nil).Once()
		cache.On("Set", ctx, key, stored, catalogTTL).Return(nil).Once()

		// Act
		category, err := categoryService.GetCategoryByID(ctx, id)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Shoes", category.Title)
	})

	t.Run("Failure - Get Missing", func(t *testing.T) {
		categoryService, repo, cache := setupCategoryService(t)
		cache.On("Get", ctx, key, mock.Anything).Return(false, nil).Once()
		repo.On("GetCategoryByID", ctx, id).Return(nil, sql.ErrNoRows).Once()

		_, err := categoryService.GetCategoryByID(ctx, id)

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Success - Update Invalidates Cache", func(t *testing.T) {
		// Arrange
		categoryService, repo, cache := setupCategoryService(t)
		repo.On("GetCategoryByID", ctx, id).Return(&models.Category{ID: id, Title: "Shoes"}, nil).Once()
		repo.On("UpdateCategory", ctx, mock.MatchedBy(func(c *models.Category) bool {
			return c.Title == "Footwear" && *c.Icon == "boot"
		})).Return(nil).Once()
		cache.On("Delete", ctx, key).Return(nil).Once()

		// Act
		category, err := categoryService.UpdateCategory(ctx, id, &models.UpdateCategoryRequest{Title: ptr("Footwear"), Icon: ptr("boot")})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Footwear", category.Title)
	})

	t.Run("Success - Delete Invalidates Cache", func(t *testing.T) {
		categoryService, repo, cache := setupCategoryService(t)
		repo.On("DeleteCategory", ctx, id).Return(nil).Once()
		cache.On("Delete", ctx, key).Return(nil).Once()

		assert.NoError(t, categoryService.DeleteCategory(ctx, id))
	})

	t.Run("Failure - Delete Missing", func(t *testing.T) {
		categoryService, repo, cache := setupCategoryService(t)
		repo.On("DeleteCategory", ctx, id).Return(sql.ErrNoRows).Once()

		requireAppError(t, categoryService.DeleteCategory(ctx, id), appErrors.ErrCodeNotFound)
		cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Success - List", func(t *testing.T) {
		categoryService, repo, _ := setupCategoryService(t)
		repo.On("ListCategories", ctx).Return([]*models.Category{{Title: "A"}, {Title: "B"}}, nil).Once()

		categories, err := categoryService.ListCategories(ctx)

		require.NoError(t, err)
		assert.Len(t, categories, 2)
	})

	t.Run("Failure - List Database Error", func(t *testing.T) {
		categoryService, repo, _ := setupCategoryService(t)
		repo.On("ListCategories", ctx).Return(nil, errors.New("boom")).Once()

		_, err := categoryService.ListCategories(ctx)

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

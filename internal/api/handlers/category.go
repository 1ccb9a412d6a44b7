package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator.New()}
}

// CreateCategory godoc
//	@Summary		Create a category
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		models.CreateCategoryRequest	true	"Category details"
//	@Success		201			{object}	models.Category
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		403			{object}	response.ErrorResponse	"Staff permission required"
//	@Failure		404			{object}	response.ErrorResponse	"Featured product not found"
//	@Failure		409			{object}	response.ErrorResponse	"Slug already exists"
//	@Security		BearerAuth
//	@Router			/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create category input")
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Category created", slog.String("categoryId", category.ID.String()))
		response.Success(w, http.StatusCreated, category)
	}
}

// GetCategory godoc
//	@Summary	Get a category by ID
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		string	true	"Category ID (UUID)"	Format(uuid)
//	@Success	200	{object}	models.Category
//	@Failure	400	{object}	response.ErrorResponse	"Invalid category ID format"
//	@Failure	404	{object}	response.ErrorResponse	"Category not found"
//	@Router		/categories/{id} [get]
func (h *CategoryHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid category id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		category, err := h.categoryService.GetCategoryByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get category", slog.String("categoryId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// UpdateCategory godoc
//	@Summary	Update a category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string							true	"Category ID (UUID)"	Format(uuid)
//	@Param		category	body		models.UpdateCategoryRequest	true	"Fields to change"
//	@Success	200			{object}	models.Category
//	@Failure	400			{object}	response.ErrorResponse
//	@Failure	404			{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("categoryId", id.String()))

		var req models.UpdateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update category input")
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Category updated")
		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//	@Summary	Delete a category
//	@Tags		Categories
//	@Param		id	path	string	true	"Category ID (UUID)"	Format(uuid)
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			logger.Error("Failed to delete category", slog.String("categoryId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Category deleted", slog.String("categoryId", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListCategories godoc
//	@Summary	List categories
//	@Tags		Categories
//	@Produce	json
//	@Success	200	{array}		models.Category
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

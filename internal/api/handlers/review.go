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

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: validator.New()}
}

// CreateReview godoc
//	@Summary		Review a product
//	@Description	Markup is stripped from name and description before storing.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID (UUID)"	Format(uuid)
//	@Param			review	body		models.CreateReviewRequest	true	"Review"
//	@Success		201		{object}	models.Review
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id}/reviews [post]
func (h *ReviewHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("productId", productID.String()))

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review input")
			return
		}

		review, err := h.reviewService.CreateReview(r.Context(), productID, &req)
		if err != nil {
			logger.Error("Failed to create review", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Review created", slog.String("reviewId", review.ID.String()))
		response.Success(w, http.StatusCreated, review)
	}
}

// ListReviews godoc
//	@Summary	List the reviews of a product
//	@Tags		Reviews
//	@Produce	json
//	@Param		id	path		string	true	"Product ID (UUID)"	Format(uuid)
//	@Success	200	{array}		models.Review
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Router		/products/{id}/reviews [get]
func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		reviews, err := h.reviewService.ListReviews(r.Context(), productID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list reviews",
				slog.String("productId", productID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}

// GetReview godoc
//	@Summary	Get a review
//	@Tags		Reviews
//	@Produce	json
//	@Param		id			path		string	true	"Product ID (UUID)"	Format(uuid)
//	@Param		reviewID	path		string	true	"Review ID (UUID)"	Format(uuid)
//	@Success	200			{object}	models.Review
//	@Failure	404			{object}	response.ErrorResponse	"Review not found"
//	@Router		/products/{id}/reviews/{reviewID} [get]
func (h *ReviewHandler) GetReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		reviewID, err := utils.ParseID(r, "reviewID")
		if err != nil {
			response.Error(w, err)
			return
		}

		review, err := h.reviewService.GetReview(r.Context(), productID, reviewID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, review)
	}
}

// DeleteReview godoc
//	@Summary	Delete a review
//	@Tags		Reviews
//	@Param		id			path	string	true	"Product ID (UUID)"	Format(uuid)
//	@Param		reviewID	path	string	true	"Review ID (UUID)"	Format(uuid)
//	@Success	204
//	@Failure	403	{object}	response.ErrorResponse	"Staff permission required"
//	@Failure	404	{object}	response.ErrorResponse	"Review not found"
//	@Security	BearerAuth
//	@Router		/products/{id}/reviews/{reviewID} [delete]
func (h *ReviewHandler) DeleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		reviewID, err := utils.ParseID(r, "reviewID")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.reviewService.DeleteReview(r.Context(), productID, reviewID); err != nil {
			logger.Error("Failed to delete review", slog.String("reviewId", reviewID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Review deleted", slog.String("reviewId", reviewID.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

package service

import (
	"context"
	"errors"
	"strings"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ReviewService interface {
	CreateReview(ctx context.Context, productID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error)
	GetReview(ctx context.Context, productID, reviewID uuid.UUID) (*models.Review, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]*models.Review, error)
	DeleteReview(ctx context.Context, productID, reviewID uuid.UUID) error
}

type reviewService struct {
	repo     repository.ReviewRepository
	products repository.ProductRepository
	policy   *bluemonday.Policy
}

func NewReviewService(repo repository.ReviewRepository, products repository.ProductRepository) ReviewService {
	return &reviewService{repo: repo, products: products, policy: bluemonday.StrictPolicy()}
}

// CreateReview stores the review with all markup stripped from its text.
func (s *reviewService) CreateReview(ctx context.Context, productID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {
	review := &models.Review{
		ProductID:   productID,
		Name:        strings.TrimSpace(s.policy.Sanitize(req.Name)),
		Description: strings.TrimSpace(s.policy.Sanitize(req.Description)),
	}

	if review.Name == "" {
		return nil, appErrors.AddValidationError("name", "must contain text")
	}

	if review.Description == "" {
		return nil, appErrors.AddValidationError("description", "must contain text")
	}

	if err := s.repo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReferenceMissing) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) GetReview(ctx context.Context, productID, reviewID uuid.UUID) (*models.Review, error) {
	review, err := s.repo.GetReview(ctx, productID, reviewID)
	if err != nil {
		return nil, lookupError(err, "Review not found", "Failed to get review")
	}

	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, productID uuid.UUID) ([]*models.Review, error) {
	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		return nil, lookupError(err, "Product not found", "Failed to get product")
	}

	reviews, err := s.repo.ListReviews(ctx, productID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list reviews").WithError(err)
	}

	return reviews, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, productID, reviewID uuid.UUID) error {
	if err := s.repo.DeleteReview(ctx, productID, reviewID); err != nil {
		return lookupError(err, "Review not found", "Failed to delete review")
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReview(ctx context.Context, productID, reviewID uuid.UUID) (*models.Review, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]*models.Review, error)
	DeleteReview(ctx context.Context, productID, reviewID uuid.UUID) error
}

type reviewRepository struct {
	DB DBTX
}

func NewReviewRepo(db DBTX) ReviewRepository {
	return &reviewRepository{DB: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	review.ID = uuid.New()

	query := `
		INSERT INTO reviews (id, product_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.DB.QueryRowContext(dbCtx, query, review.ID, review.ProductID, review.Name, review.Description).Scan(&review.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting review: %w", mapPgError(err))
	}

	return nil
}

func (r *reviewRepository) GetReview(ctx context.Context, productID, reviewID uuid.UUID) (*models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	review := &models.Review{}

	query := `
		SELECT id, product_id, name, description, created_at
		FROM reviews
		WHERE id = $1 AND product_id = $2`

	err := r.DB.QueryRowContext(dbCtx, query, reviewID, productID).
		Scan(&review.ID, &review.ProductID, &review.Name, &review.Description, &review.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying review: %w", err)
	}

	return review, nil
}

func (r *reviewRepository) ListReviews(ctx context.Context, productID uuid.UUID) ([]*models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, name, description, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}

	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(&review.ID, &review.ProductID, &review.Name, &review.Description, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}

		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) DeleteReview(ctx context.Context, productID, reviewID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM reviews WHERE id = $1 AND product_id = $2`, reviewID, productID)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}

	return requireAffected(result)
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

type categoryRepository struct {
	DB DBTX
}

func NewCategoryRepo(db DBTX) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	category.ID = uuid.New()

	query := `
		INSERT INTO categories (id, title, slug, featured_product_id, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, category.ID, category.Title, category.Slug, category.FeaturedProductID, category.Icon).
		Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting category: %w", mapPgError(err))
	}

	return nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	category := &models.Category{}

	query := `
		SELECT id, title, slug, featured_product_id, icon, created_at, updated_at
		FROM categories
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&category.ID, &category.Title, &category.Slug, &category.FeaturedProductID, &category.Icon, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying category: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE categories SET title = $1, slug = $2, featured_product_id = $3, icon = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, category.Title, category.Slug, category.FeaturedProductID, category.Icon, category.ID).
		Scan(&category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating category: %w", mapPgError(err))
	}

	return nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return requireAffected(result)
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, title, slug, featured_product_id, icon, created_at, updated_at
		FROM categories
		ORDER BY title`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.Category{}

	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.Title, &category.Slug, &category.FeaturedProductID, &category.Icon, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// requireAffected reports sql.ErrNoRows when a write touched nothing.
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

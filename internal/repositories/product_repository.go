package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
}

type productRepository struct {
	DB DBTX
}

func NewProductRepo(db DBTX) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.name, p.description, p.slug, p.discount, p.old_price, p.category_id,
		p.inventory, p.top_deal, p.flash_sales, p.image, p.created_at, p.updated_at,
		c.id, c.title, c.slug`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	var (
		categoryID    uuid.NullUUID
		categoryTitle sql.NullString
		categorySlug  sql.NullString
	)

	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Slug, &product.Discount, &product.OldPrice, &product.CategoryID,
		&product.Inventory, &product.TopDeal, &product.FlashSales, &product.Image, &product.CreatedAt, &product.UpdatedAt,
		&categoryID, &categoryTitle, &categorySlug)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		product.Category = &models.Category{ID: categoryID.UUID, Title: categoryTitle.String}
		if categorySlug.Valid {
			product.Category.Slug = &categorySlug.String
		}
	}

	product.Price = pricing.DisplayPrice(product.PriceSnapshot())

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product.ID = uuid.New()

	query := `
		INSERT INTO products (id, name, description, slug, discount, old_price, category_id, inventory, top_deal, flash_sales, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, product.ID, product.Name, product.Description, product.Slug, product.Discount, product.OldPrice,
		product.CategoryID, product.Inventory, product.TopDeal, product.FlashSales, product.Image).
		Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting product: %w", mapPgError(err))
	}

	product.Price = pricing.DisplayPrice(product.PriceSnapshot())

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, description = $2, slug = $3, discount = $4, old_price = $5, category_id = $6,
			inventory = $7, top_deal = $8, flash_sales = $9, image = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Slug, product.Discount, product.OldPrice, product.CategoryID,
		product.Inventory, product.TopDeal, product.FlashSales, product.Image, product.ID).
		Scan(&product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating product: %w", mapPgError(err))
	}

	product.Price = pricing.DisplayPrice(product.PriceSnapshot())

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", mapPgError(err))
	}

	return requireAffected(result)
}

// buildProductFilter returns the WHERE clause and its arguments for filter.
func buildProductFilter(filter models.ProductFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args)))
	}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func productOrdering(ordering string) string {
	switch ordering {
	case "old_price":
		return "p.old_price ASC, p.id"
	case "-old_price":
		return "p.old_price DESC, p.id"
	default:
		return "p.created_at DESC, p.id"
	}
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args := buildProductFilter(filter)

	var total int

	countQuery := `SELECT COUNT(*) FROM products p` + where

	if err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`, productColumns, where, productOrdering(filter.Ordering), len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

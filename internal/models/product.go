package models

import (
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID                uuid.UUID  `json:"category_id"`
	Title             string     `json:"title"`
	Slug              *string    `json:"slug"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id,omitempty"`
	Icon              *string    `json:"icon,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Product stores the base price as OldPrice; Price is the derived display price.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Slug        *string         `json:"slug"`
	Discount    bool            `json:"discount"`
	OldPrice    decimal.Decimal `json:"old_price"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Category    *Category       `json:"category,omitempty"`
	Inventory   int             `json:"inventory"`
	TopDeal     bool            `json:"top_deal"`
	FlashSales  bool            `json:"flash_sales"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p *Product) PriceSnapshot() pricing.PriceSnapshot {
	return pricing.PriceSnapshot{BasePrice: p.OldPrice, Discount: p.Discount}
}

// ProductSummary is the product view embedded in cart and order items.
type ProductSummary struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	OldPrice decimal.Decimal `json:"-"`
	Discount bool            `json:"-"`
	Price    decimal.Decimal `json:"price"`
}

func (p ProductSummary) PriceSnapshot() pricing.PriceSnapshot {
	return pricing.PriceSnapshot{BasePrice: p.OldPrice, Discount: p.Discount}
}

type CreateCategoryRequest struct {
	Title             string     `json:"title" validate:"required,max=200"`
	Slug              *string    `json:"slug,omitempty" validate:"omitempty,max=50"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id,omitempty"`
	Icon              *string    `json:"icon,omitempty" validate:"omitempty,max=100"`
}

type UpdateCategoryRequest struct {
	Title             *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Slug              *string    `json:"slug,omitempty" validate:"omitempty,max=50"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id,omitempty"`
	Icon              *string    `json:"icon,omitempty" validate:"omitempty,max=100"`
}

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description,omitempty"`
	Slug        *string          `json:"slug,omitempty" validate:"omitempty,max=50"`
	Discount    bool             `json:"discount"`
	OldPrice    *decimal.Decimal `json:"old_price,omitempty"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Inventory   *int             `json:"inventory,omitempty" validate:"omitempty,gte=0"`
	TopDeal     bool             `json:"top_deal"`
	FlashSales  bool             `json:"flash_sales"`
	Image       string           `json:"image,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string          `json:"description,omitempty"`
	Slug        *string          `json:"slug,omitempty" validate:"omitempty,max=50"`
	Discount    *bool            `json:"discount,omitempty"`
	OldPrice    *decimal.Decimal `json:"old_price,omitempty"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Inventory   *int             `json:"inventory,omitempty" validate:"omitempty,gte=0"`
	TopDeal     *bool            `json:"top_deal,omitempty"`
	FlashSales  *bool            `json:"flash_sales,omitempty"`
	Image       *string          `json:"image,omitempty"`
}

// ProductFilter narrows product listings. Ordering accepts "old_price" or "-old_price".
type ProductFilter struct {
	Page       int
	PageSize   int
	Search     string
	CategoryID *uuid.UUID
	Ordering   string
}

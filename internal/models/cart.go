package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxItemQuantity is the largest quantity a cart line can hold (Postgres INTEGER).
const MaxItemQuantity = math.MaxInt32

type CartItem struct {
	ID       uuid.UUID       `json:"id"`
	CartID   uuid.UUID       `json:"cart"`
	Product  ProductSummary  `json:"product"`
	Quantity int             `json:"quantity"`
	SubTotal decimal.Decimal `json:"sub_total"`
}

type Cart struct {
	ID        uuid.UUID       `json:"id"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

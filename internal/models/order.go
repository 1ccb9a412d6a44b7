package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusComplete PaymentStatus = "complete"
	PaymentStatusFailed   PaymentStatus = "failed"
)

var ErrInvalidPaymentTransition = errors.New("invalid payment status transition")

// Transition validates moving from s to next. Pending may move to complete or failed;
// repeating the current terminal status is a no-op and reports changed=false.
func (s PaymentStatus) Transition(next PaymentStatus) (changed bool, err error) {
	if s == next && s != PaymentStatusPending {
		return false, nil
	}

	if s == PaymentStatusPending && (next == PaymentStatusComplete || next == PaymentStatusFailed) {
		return true, nil
	}

	return false, ErrInvalidPaymentTransition
}

type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"-"`
	Product   ProductSummary  `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Order totals are priced against current product prices on every read.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	PlacedAt         time.Time       `json:"placed_at"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	OwnerID          uuid.UUID       `json:"owner"`
	PaymentSessionID string          `json:"payment_session_id,omitempty"`
	Items            []OrderItem     `json:"items"`
	TotalPrice       decimal.Decimal `json:"total_price"`
}

type CreateOrderRequest struct {
	CartID uuid.UUID `json:"cart_id" validate:"required"`
}

type PaymentSession struct {
	OrderID     uuid.UUID       `json:"order_id"`
	SessionID   string          `json:"session_id"`
	RedirectURL string          `json:"redirect_url"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"date_created"`
}

type CreateReviewRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"required"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Picture   *string   `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateProfileRequest struct {
	Name    string  `json:"name" validate:"required,max=30"`
	Bio     string  `json:"bio" validate:"required"`
	Picture *string `json:"picture,omitempty" validate:"omitempty,max=255"`
}

type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=30"`
	Bio     *string `json:"bio,omitempty"`
	Picture *string `json:"picture,omitempty" validate:"omitempty,max=255"`
}

package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	ListProfiles(ctx context.Context, page, size int) ([]*models.Profile, int, error)
}

type profileRepository struct {
	DB DBTX
}

func NewProfileRepo(db DBTX) ProfileRepository {
	return &profileRepository{DB: db}
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	profile.ID = uuid.New()

	query := `
		INSERT INTO profiles (id, name, bio, picture)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, profile.ID, profile.Name, profile.Bio, profile.Picture).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}

	return nil
}

func (r *profileRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	profile := &models.Profile{}

	query := `SELECT id, name, bio, picture, created_at, updated_at FROM profiles WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&profile.ID, &profile.Name, &profile.Bio, &profile.Picture, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE profiles SET name = $1, bio = $2, picture = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	if err := r.DB.QueryRowContext(dbCtx, query, profile.Name, profile.Bio, profile.Picture, profile.ID).Scan(&profile.UpdatedAt); err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}

	return nil
}

func (r *profileRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}

	return requireAffected(result)
}

func (r *profileRepository) ListProfiles(ctx context.Context, page, size int) ([]*models.Profile, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM profiles`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting profiles: %w", err)
	}

	query := `
		SELECT id, name, bio, picture, created_at, updated_at
		FROM profiles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*models.Profile{}

	for rows.Next() {
		profile := &models.Profile{}
		if err := rows.Scan(&profile.ID, &profile.Name, &profile.Bio, &profile.Picture, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning profile: %w", err)
		}

		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

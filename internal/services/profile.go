package service

import (
	"context"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, req *models.CreateProfileRequest) (*models.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	ListProfiles(ctx context.Context, page, size int) ([]*models.Profile, int, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) CreateProfile(ctx context.Context, req *models.CreateProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{Name: req.Name, Bio: req.Bio, Picture: req.Picture}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, appErrors.DatabaseError("Failed to create profile").WithError(err)
	}

	return profile, nil
}

func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.repo.GetProfileByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Profile not found", "Failed to get profile")
	}

	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}

	if req.Picture != nil {
		profile.Picture = req.Picture
	}

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		return nil, lookupError(err, "Profile not found", "Failed to update profile")
	}

	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProfile(ctx, id); err != nil {
		return lookupError(err, "Profile not found", "Failed to delete profile")
	}

	return nil
}

func (s *profileService) ListProfiles(ctx context.Context, page, size int) ([]*models.Profile, int, error) {
	profiles, total, err := s.repo.ListProfiles(ctx, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list profiles").WithError(err)
	}

	return profiles, total, nil
}
